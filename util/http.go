package util

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrSendFailed is returned when the request could not be created or sent
	ErrSendFailed = errors.New("sending failed")
	// ErrResponseReadFail is returned when the response to the request could not be read
	ErrResponseReadFail = errors.New("failed to read response")
	// ErrBadResponse is returned when the request did not receive a 2** response
	ErrBadResponse = errors.New("bad response")
)

// RequestOption can be used to modify the request that is to be sent
type RequestOption func(*http.Request)

// JsonRequest sets the content type to application/json
func JsonRequest() RequestOption {
	return func(r *http.Request) {
		r.Header.Set("Content-Type", "application/json")
	}
}

// TextRequest sets the content type to text/plain
func TextRequest() RequestOption {
	return func(r *http.Request) {
		r.Header.Set("Content-Type", "text/plain")
	}
}

// SendMsg creates and send a HTTP Request to the specified addresss. The
// body of a non-2xx response is returned along with ErrBadResponse.
func SendMsg(method, toAddr, msg string, options ...RequestOption) (string, error) {
	client := &http.Client{Timeout: 5 * time.Minute}
	req, err := http.NewRequest(method, "http://"+toAddr, bytes.NewBufferString(msg))
	if err != nil {
		return "", errors.Wrap(ErrSendFailed, err.Error())
	}

	for _, o := range options {
		o(req)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(ErrSendFailed, err.Error())
	}
	defer resp.Body.Close()
	bodyB, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ErrResponseReadFail
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return string(bodyB), errors.Wrapf(ErrBadResponse, "status %d", resp.StatusCode)
	}
	return string(bodyB), nil
}
