package dto

type ResolveQuery struct {
	Origen  string
	Destino string
}

type ResolveResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Duration    string  `json:"duration"`
	MapLink     *string `json:"map_link"`
	RawResponse string  `json:"raw_response"`
	Endpoint    string  `json:"endpoint"`
}

type ErrorResponse struct {
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error"`
}
