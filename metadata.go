package flvparse

// MetaData is a typed view of the onMetaData script tag most muxers write
// as the first tag of a stream. Fields the tag does not carry stay zero.
type MetaData struct {
	Duration              float64 // seconds
	Width                 int64
	Height                int64
	VideoDataRate         float64 // kbit/s
	FrameRate             float64
	VideoCodecID          int64
	AudioDataRate         float64 // kbit/s
	AudioDelay            float64
	AudioSampleRate       float64
	AudioSampleSize       int64
	AudioCodecID          int64
	Stereo                bool
	FileSize              int64
	Encoder               string
	Creator               string
	MetadataCreator       string
	CreationDate          string
	HasKeyframes          bool
	HasVideo              bool
	HasAudio              bool
	HasMetadata           bool
	CanSeekToEnd          bool
	LastTimestamp         float64
	LastKeyframeTimestamp float64
	LastKeyframeLocation  int64
	DataSize              int64
	VideoSize             int64
	AudioSize             int64
	Keyframes             *Keyframes
}

// Keyframes is the seek index some muxers embed under the "keyframes"
// metadata property.
type Keyframes struct {
	FilePositions []int64   // byte offsets of key frames
	Times         []float64 // their timestamps in seconds
}

// MetaData returns a typed view of the first onMetaData script tag, or
// ok=false when the stream carries none. The argument value may be an
// ECMAArray or a plain Object; encoders in the wild emit both.
func (c *Container) MetaData() (*MetaData, bool) {
	for _, tag := range c.Body.Tags {
		sd, ok := tag.Data.(*ScriptData)
		if !ok || sd.Name != "onMetaData" {
			continue
		}
		props, ok := scriptProperties(sd.Value)
		if !ok {
			continue
		}
		return metaDataFromProperties(props), true
	}
	return nil, false
}

func scriptProperties(v ScriptValue) ([]ObjectProperty, bool) {
	switch v := v.(type) {
	case ECMAArray:
		return v.Properties, true
	case Object:
		return v.Properties, true
	default:
		return nil, false
	}
}

func metaDataFromProperties(props []ObjectProperty) *MetaData {
	var md MetaData
	for _, p := range props {
		switch p.Name {
		case "duration":
			md.Duration, _ = scriptNumber(p.Value)
		case "width":
			md.Width = scriptInt(p.Value)
		case "height":
			md.Height = scriptInt(p.Value)
		case "videodatarate":
			md.VideoDataRate, _ = scriptNumber(p.Value)
		case "framerate":
			md.FrameRate, _ = scriptNumber(p.Value)
		case "videocodecid":
			md.VideoCodecID = scriptInt(p.Value)
		case "audiodatarate":
			md.AudioDataRate, _ = scriptNumber(p.Value)
		case "audiodelay":
			md.AudioDelay, _ = scriptNumber(p.Value)
		case "audiosamplerate":
			md.AudioSampleRate, _ = scriptNumber(p.Value)
		case "audiosamplesize":
			md.AudioSampleSize = scriptInt(p.Value)
		case "audiocodecid":
			md.AudioCodecID = scriptInt(p.Value)
		case "stereo":
			md.Stereo = scriptBool(p.Value)
		case "filesize":
			md.FileSize = scriptInt(p.Value)
		case "encoder":
			md.Encoder = scriptString(p.Value)
		case "creator":
			md.Creator = scriptString(p.Value)
		case "metadatacreator":
			md.MetadataCreator = scriptString(p.Value)
		case "creationdate":
			md.CreationDate = scriptString(p.Value)
		case "hasKeyframes":
			md.HasKeyframes = scriptBool(p.Value)
		case "hasVideo":
			md.HasVideo = scriptBool(p.Value)
		case "hasAudio":
			md.HasAudio = scriptBool(p.Value)
		case "hasMetadata":
			md.HasMetadata = scriptBool(p.Value)
		case "canSeekToEnd":
			md.CanSeekToEnd = scriptBool(p.Value)
		case "lasttimestamp":
			md.LastTimestamp, _ = scriptNumber(p.Value)
		case "lastkeyframetimestamp":
			md.LastKeyframeTimestamp, _ = scriptNumber(p.Value)
		case "lastkeyframelocation":
			md.LastKeyframeLocation = scriptInt(p.Value)
		case "datasize":
			md.DataSize = scriptInt(p.Value)
		case "videosize":
			md.VideoSize = scriptInt(p.Value)
		case "audiosize":
			md.AudioSize = scriptInt(p.Value)
		case "keyframes":
			md.Keyframes = keyframesFromValue(p.Value)
		}
	}
	return &md
}

func keyframesFromValue(v ScriptValue) *Keyframes {
	props, ok := scriptProperties(v)
	if !ok {
		return nil
	}
	var kf Keyframes
	for _, p := range props {
		arr, ok := p.Value.(StrictArray)
		if !ok {
			continue
		}
		switch p.Name {
		case "filepositions":
			for _, e := range arr {
				if n, ok := e.(Number); ok {
					kf.FilePositions = append(kf.FilePositions, int64(n))
				}
			}
		case "times":
			for _, e := range arr {
				if n, ok := e.(Number); ok {
					kf.Times = append(kf.Times, float64(n))
				}
			}
		}
	}
	if kf.FilePositions == nil && kf.Times == nil {
		return nil
	}
	return &kf
}

func scriptNumber(v ScriptValue) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

func scriptInt(v ScriptValue) int64 {
	n, _ := scriptNumber(v)
	return int64(n)
}

func scriptBool(v ScriptValue) bool {
	b, ok := v.(Boolean)
	return ok && bool(b)
}

func scriptString(v ScriptValue) string {
	switch s := v.(type) {
	case String:
		return string(s)
	case LongString:
		return string(s)
	default:
		return ""
	}
}
