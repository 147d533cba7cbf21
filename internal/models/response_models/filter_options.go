package response_models

type ScoreRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions bundles the distinct categorical values across the four
// reference tables. It exists purely to drive the client-side filter UI.
type FilterOptions struct {
	Dynasties     []string   `json:"dynasties"`
	Authors       []string   `json:"authors"`
	Poemtypes     []string   `json:"poemtypes"`
	Keywords      []string   `json:"keywords"`
	RxTimes       []string   `json:"rx_times"`
	HeritageTypes []string   `json:"heritage_types"`
	People        []string   `json:"people"`
	Periods       []string   `json:"periods"`
	Properties    []string   `json:"properties"`
	SightLevels   []string   `json:"sight_levels"`
	Provinces     []string   `json:"provinces"`
	Cities        []string   `json:"cities"`
	Counties      []string   `json:"counties"`
	ScoreRange    ScoreRange `json:"score_range"`
}
