package core

// TrackInfo is the probed technical summary shown in the header.
// Fields hold display-ready strings; unknown values are "-".
type TrackInfo struct {
	Size       string
	SampleRate string
	BitRate    string
	BitDepth   string
}

// UnknownTrackInfo is used when probing fails entirely.
func UnknownTrackInfo() TrackInfo {
	return TrackInfo{
		Size:       "-",
		SampleRate: "-",
		BitRate:    "-",
		BitDepth:   "-",
	}
}
