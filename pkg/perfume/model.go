package perfume

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

var Genders = []Gender{Male, Female}

type Weather string

const (
	Hot   Weather = "hot"
	Mild  Weather = "mild"
	Cold  Weather = "cold"
	Rainy Weather = "rainy"
)

var Weathers = []Weather{Hot, Mild, Cold, Rainy}

// Recommendation is a single perfume suggestion. Notes are comma separated scent descriptors.
type Recommendation struct {
	Name   string `json:"name"`
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

// Suggestion is a lookup result together with the weather it was classified into.
type Suggestion struct {
	Gender          Gender
	Weather         Weather
	Recommendations []Recommendation
}

func (s Suggestion) Names() []string {
	names := make([]string, 0, len(s.Recommendations))
	for _, r := range s.Recommendations {
		names = append(names, r.Name)
	}

	return names
}

// Request is the already parsed input of a lookup.
type Request struct {
	Gender      string  `json:"gender"`
	Temperature float64 `json:"temperature"`
	Rainy       bool    `json:"rainy"`
}
