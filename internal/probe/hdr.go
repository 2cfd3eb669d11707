package probe

// IsHDR reports whether the video stream carries PQ or HLG transfer, or
// BT.2020 primaries. Phones record HLG by default.
func (r *Result) IsHDR() bool {
	if r.Video == nil {
		return false
	}
	switch r.Video.ColorTransfer {
	case "smpte2084", "arib-std-b67":
		return true
	}
	return r.Video.ColorPrimaries == "bt2020"
}
