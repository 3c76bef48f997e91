package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/q191201771/naza/pkg/nazalog"

	flvparse "github.com/flvtools/go-flvparse"
)

func main() {
	var (
		inPath   string
		printAll bool
		showMeta bool
		maxDepth int
	)
	flag.StringVar(&inPath, "in", "", "input FLV file, optionally gzip/zstd/lz4/brotli compressed")
	flag.BoolVar(&printAll, "print", false, "print every tag, not just the summary")
	flag.BoolVar(&showMeta, "meta", false, "print decoded onMetaData values")
	flag.IntVar(&maxDepth, "max-depth", 0, "script value nesting bound, 0 for the default")
	flag.Parse()
	if inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := flvparse.ReadFile(inPath)
	if err != nil {
		nazalog.Fatalf("read %s: %v", inPath, err)
	}
	var opts []flvparse.DecodeOption
	if maxDepth > 0 {
		opts = append(opts, flvparse.WithDecodeLimits(flvparse.Limits{MaxScriptDepth: maxDepth}))
	}
	c, err := flvparse.Decode(data, opts...)
	if err != nil {
		nazalog.Fatalf("decode %s: %v", inPath, err)
	}

	printHeader(c.Header)
	if printAll {
		printTags(c.Body.Tags)
	}
	printCounts(c.Body.Tags)
	if showMeta {
		printMeta(c)
	}
}

func printHeader(h flvparse.Header) {
	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader([]string{"FLV File Header", ""})
	t.Append([]string{"Signature (3B)", fmt.Sprintf("% x", h.Signature)})
	t.Append([]string{"Version (1B)", strconv.Itoa(int(h.Version))})
	t.Append([]string{"Flags (1B)", fmt.Sprintf("%04b %04b", h.Flags>>4, h.Flags&0x0f)})
	t.Append([]string{"DataOffset (4B)", strconv.FormatUint(uint64(h.DataOffset), 10)})
	t.Render()
}

func printTags(tags []flvparse.Tag) {
	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader([]string{"Index", "TagType (1B)", "DataSize (3B)", "Timestamp (4B)", "StreamID (3B)"})
	for i, tag := range tags {
		h := tag.Header
		t.Append([]string{
			strconv.Itoa(i + 1),
			h.Type.String(),
			strconv.FormatUint(uint64(h.DataSize), 10),
			strconv.FormatUint(uint64(h.Timestamp), 10),
			strconv.FormatUint(uint64(h.StreamID), 10),
		})
	}
	t.Render()
}

func printCounts(tags []flvparse.Tag) {
	var script, video, audio int
	for _, tag := range tags {
		switch tag.Header.Type {
		case flvparse.TagTypeScript:
			script++
		case flvparse.TagTypeVideo:
			video++
		case flvparse.TagTypeAudio:
			audio++
		}
	}
	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader([]string{"Total tags", "Script tags", "Video tags", "Audio tags"})
	t.Append([]string{
		strconv.Itoa(len(tags)),
		strconv.Itoa(script),
		strconv.Itoa(video),
		strconv.Itoa(audio),
	})
	t.Render()
}

func printMeta(c *flvparse.Container) {
	md, ok := c.MetaData()
	if !ok {
		nazalog.Warnf("no onMetaData tag in stream")
		return
	}
	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader([]string{"onMetaData", ""})
	add := func(name, value string) { t.Append([]string{name, value}) }
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	add("duration", num(md.Duration))
	add("width", strconv.FormatInt(md.Width, 10))
	add("height", strconv.FormatInt(md.Height, 10))
	add("framerate", num(md.FrameRate))
	add("videocodecid", strconv.FormatInt(md.VideoCodecID, 10))
	add("videodatarate", num(md.VideoDataRate))
	add("audiocodecid", strconv.FormatInt(md.AudioCodecID, 10))
	add("audiodatarate", num(md.AudioDataRate))
	add("audiosamplerate", num(md.AudioSampleRate))
	add("stereo", strconv.FormatBool(md.Stereo))
	if md.Creator != "" {
		add("creator", md.Creator)
	}
	if md.MetadataCreator != "" {
		add("metadatacreator", md.MetadataCreator)
	}
	if md.Keyframes != nil {
		add("keyframes", strconv.Itoa(len(md.Keyframes.Times)))
	}
	t.Render()
}
