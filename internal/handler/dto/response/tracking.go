package response

type TrackVisitResponse struct {
	Tracked bool `json:"tracked"`
}

type TrackConversionResponse struct {
	Attributed bool `json:"attributed"`
}
