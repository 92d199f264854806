package msg

type PredefinedResponse struct {
	Text string
}

type Options struct {
	IsRespToHiddenMessage bool
	PredefinedResponses   []PredefinedResponse
	RemoveKeyboard        bool
}

func (o *Options) WithIsResponseToHiddenMessage() *Options {
	o.IsRespToHiddenMessage = true
	return o
}

func (o *Options) WithPredefinedResponse(texts ...string) *Options {
	for _, text := range texts {
		o.PredefinedResponses = append(o.PredefinedResponses, PredefinedResponse{Text: text})
	}

	return o
}

func (o *Options) WithRemovedKeyboard() *Options {
	o.RemoveKeyboard = true
	return o
}

func (o *Options) IsResponseToHiddenMessage() bool {
	if o == nil {
		return false
	}

	return o.IsRespToHiddenMessage
}

func (o *Options) GetPredefinedResponses() []PredefinedResponse {
	if o == nil {
		return nil
	}

	return o.PredefinedResponses
}

func (o *Options) ShouldRemoveKeyboard() bool {
	if o == nil {
		return false
	}

	return o.RemoveKeyboard
}
