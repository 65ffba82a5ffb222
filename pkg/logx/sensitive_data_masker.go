package logx

import (
	"bytes"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const maskedValue = "[MASKED]"

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var (
	json = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		UseNumber:              true,
	}.Froze()

	headerBodySeparator = []byte("\r\n\r\n")

	// Matched case-insensitively, the way the request decoder matches fields.
	sensitiveKeys = []string{"ceiling", "floor", "email", "password", "max", "min"}

	// Applied to everything outside a JSON body, such as dumped headers.
	sensitiveDataPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Authorization:\s*Bearer )[^\r\n]+()`),
		regexp.MustCompile(`(?is)("(?:password|email)"\s*:\s*").+?(")`),
		regexp.MustCompile(`(?i)("(?:ceiling|floor|max|min)"\s*:\s*)[^,}\s]+()`),
	}
)

// SensitiveDataMasker hides private values in dumped HTTP messages. A JSON
// body is decoded and every sensitive key is masked whatever its spelling; a
// body that does not decode is masked whole.
type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	trimmed := bytes.TrimSpace(input)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return maskBody(input)
	}

	head, body, found := bytes.Cut(input, headerBodySeparator)
	if !found {
		return maskText(input)
	}

	var out bytes.Buffer

	out.Write(maskText(head))
	out.Write(headerBodySeparator)
	out.Write(maskBody(body))

	return out.Bytes()
}

func maskText(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}"+maskedValue+"${2}"))
	}

	return input
}

func maskBody(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return body
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return []byte(maskedValue)
	}

	out, err := json.Marshal(maskValue(value))
	if err != nil {
		return []byte(maskedValue)
	}

	return out
}

func maskValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			if isSensitiveKey(key) {
				v[key] = maskedValue
				continue
			}

			v[key] = maskValue(item)
		}

		return v
	case []any:
		for i, item := range v {
			v[i] = maskValue(item)
		}

		return v
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	for _, sensitive := range sensitiveKeys {
		if strings.EqualFold(key, sensitive) {
			return true
		}
	}

	return false
}
