package httpclient

// Validate is the single chokepoint for status interpretation: no other
// component inspects status codes. It accepts results whose status is in
// [200,300) and returns the validated body bytes; anything else is rejected.
func Validate(res *RawResult) ([]byte, error) {
	if res == nil {
		return nil, NewInvalidResponseError("missing response")
	}
	if res.StatusCode < 100 {
		return nil, NewInvalidResponseError("malformed status code")
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, NewStatusError(res.StatusCode, res.Body)
	}
	return res.Body, nil
}
