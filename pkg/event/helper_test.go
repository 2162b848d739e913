package event_test

import "encoding/json"

func unmarshal(body []byte, v any) error {
	return json.Unmarshal(body, v)
}
