package perfume

// Recommend returns the two perfumes matching the gender and the weather derived from
// the temperature and the rain flag.
func Recommend(gender string, tempC float64, rainy bool) ([]Recommendation, error) {
	s, err := Suggest(gender, tempC, rainy)
	if err != nil {
		return nil, err
	}

	return s.Recommendations, nil
}

func Suggest(gender string, tempC float64, rainy bool) (Suggestion, error) {
	g, err := NormalizeGender(gender)
	if err != nil {
		return Suggestion{}, err
	}

	w := WeatherFromTemperature(tempC, rainy)

	return Suggestion{
		Gender:          g,
		Weather:         w,
		Recommendations: Lookup(g, w),
	}, nil
}

// Lookup returns a copy of the table entry, so callers are free to modify the result.
func Lookup(g Gender, w Weather) []Recommendation {
	entries := table[g][w]

	res := make([]Recommendation, len(entries))
	copy(res, entries)

	return res
}

func SuggestFor(req Request) (Suggestion, error) {
	return Suggest(req.Gender, req.Temperature, req.Rainy)
}
