package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gitbot/pkg/infra/notify"
	"github.com/m-mizutani/gt"
)

func TestSlack_Notify(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := notify.NewSlack(server.URL)
	err := n.Notify(context.Background(), "release branch creation failed", errors.New("reference already exists"))
	gt.NoError(t, err)

	text, ok := received["text"].(string)
	gt.True(t, ok)
	gt.String(t, text).Contains("[gitbot] release branch creation failed")
	gt.String(t, text).Contains("reference already exists")
}

func TestSlack_NotifyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := notify.NewSlack(server.URL)
	gt.Error(t, n.Notify(context.Background(), "msg", nil))
}

func TestSentry_InvalidDSN(t *testing.T) {
	_, err := notify.NewSentry("not a dsn", "test")
	gt.Error(t, err)
}

type recorder struct {
	msgs []string
	err  error
}

func (r *recorder) Notify(_ context.Context, msg string, _ error) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestMulti_Notify(t *testing.T) {
	a := &recorder{}
	b := &recorder{err: errors.New("b failed")}
	c := &recorder{}

	err := notify.Multi{a, b, c}.Notify(context.Background(), "hello", nil)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("b failed")

	// every notifier is called even if one fails
	gt.Value(t, a.msgs).Equal([]string{"hello"})
	gt.Value(t, c.msgs).Equal([]string{"hello"})

	gt.NoError(t, notify.Nop{}.Notify(context.Background(), "x", nil))
}
