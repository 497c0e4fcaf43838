package models

import (
	"errors"
	"fmt"
)

// Model identifies the backend AI model a chat request is routed to.
type Model string

const (
	ModelGemini   Model = "gemini"
	ModelGroq     Model = "groq"
	ModelGPT35    Model = "gpt-3.5"
	ModelGPT4     Model = "gpt-4"
	ModelLocalOSS Model = "local-oss"
)

// Models lists the routable backends.
var Models = []Model{ModelGemini, ModelGroq, ModelGPT35, ModelGPT4, ModelLocalOSS}

var ErrUnknownModel = errors.New("unknown model")

// ParseModel validates a user-supplied model name.
func ParseModel(s string) (Model, error) {
	for _, m := range Models {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}
