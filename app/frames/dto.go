package frames

// FrameRequest is the signed interaction packet a Farcaster client posts
// when a viewer presses a frame button. Only the untrusted fields are read;
// signature verification is out of scope for these cards.
type FrameRequest struct {
	UntrustedData struct {
		FID         int64  `json:"fid"`
		URL         string `json:"url"`
		MessageHash string `json:"messageHash"`
		Timestamp   int64  `json:"timestamp"`
		Network     int    `json:"network"`
		ButtonIndex int    `json:"buttonIndex"`
		InputText   string `json:"inputText"`
	} `json:"untrustedData"`
	TrustedData struct {
		MessageBytes string `json:"messageBytes"`
	} `json:"trustedData"`
}

// Interaction converts the wire packet to the state machine's input
func (f *FrameRequest) Interaction() Interaction {
	return Interaction{
		ButtonIndex: f.UntrustedData.ButtonIndex,
		InputText:   f.UntrustedData.InputText,
	}
}
