// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"strconv"

	"github.com/ChainSafe/gotries/internal/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "query"))

var (
	ErrParameterMissing = errors.New("query parameter missing")
	ErrLimitNotValid    = errors.New("limit is not valid")
	ErrKeyNotFound      = errors.New("key not found")
	ErrNoMatch          = errors.New("no key is a prefix of the query")
)

// Trie is the read only trie served. It must not be
// mutated while the handler serves requests.
type Trie interface {
	TryGet(key string) (value []byte, ok bool)
	EntriesWithPrefix(prefix string) iter.Seq2[[]byte, []byte]
	MatchLongestPrefix(query string) (length int, value []byte)
	Len() int
	LongestPossibleKeyLength() int
}

type handler struct {
	trie Trie
}

// NewHandler returns an HTTP handler answering queries on the trie given.
// Metrics of the gatherer are served on /metrics if it is not nil.
func NewHandler(trie Trie, gatherer prometheus.Gatherer) http.Handler {
	h := &handler{trie: trie}

	router := mux.NewRouter()
	router.HandleFunc("/get", h.get).Methods(http.MethodGet)
	router.HandleFunc("/prefix", h.prefix).Methods(http.MethodGet)
	router.HandleFunc("/match", h.match).Methods(http.MethodGet)
	router.HandleFunc("/stats", h.stats).Methods(http.MethodGet)
	if gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return router
}

// Entry is a key value pair as encoded in responses.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PrefixResponse is the response of the /prefix endpoint.
type PrefixResponse struct {
	Entries []Entry `json:"entries"`
}

// MatchResponse is the response of the /match endpoint.
type MatchResponse struct {
	Length int    `json:"length"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// StatsResponse is the response of the /stats endpoint.
type StatsResponse struct {
	Entries                  int `json:"entries"`
	LongestPossibleKeyLength int `json:"longestPossibleKeyLength"`
}

// ErrorResponse is the response for any request failing.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *handler) get(writer http.ResponseWriter, request *http.Request) {
	key, ok := parameter(request, "key")
	if !ok {
		writeError(writer, http.StatusBadRequest,
			fmt.Errorf("%w: key", ErrParameterMissing))
		return
	}

	value, ok := h.trie.TryGet(key)
	if !ok {
		writeError(writer, http.StatusNotFound,
			fmt.Errorf("%w: %q", ErrKeyNotFound, key))
		return
	}

	writeJSON(writer, http.StatusOK, Entry{Key: key, Value: string(value)})
}

func (h *handler) prefix(writer http.ResponseWriter, request *http.Request) {
	prefix, _ := parameter(request, "prefix")

	limit := 0
	if limitString, ok := parameter(request, "limit"); ok {
		var err error
		limit, err = strconv.Atoi(limitString)
		if err != nil || limit < 0 {
			writeError(writer, http.StatusBadRequest,
				fmt.Errorf("%w: %s", ErrLimitNotValid, limitString))
			return
		}
	}

	response := PrefixResponse{Entries: []Entry{}}
	for key, value := range h.trie.EntriesWithPrefix(prefix) {
		response.Entries = append(response.Entries,
			Entry{Key: string(key), Value: string(value)})
		if len(response.Entries) == limit {
			break
		}
	}

	writeJSON(writer, http.StatusOK, response)
}

func (h *handler) match(writer http.ResponseWriter, request *http.Request) {
	query, ok := parameter(request, "query")
	if !ok {
		writeError(writer, http.StatusBadRequest,
			fmt.Errorf("%w: query", ErrParameterMissing))
		return
	}

	length, value := h.trie.MatchLongestPrefix(query)
	if length == -1 {
		writeError(writer, http.StatusNotFound,
			fmt.Errorf("%w: %q", ErrNoMatch, query))
		return
	}

	writeJSON(writer, http.StatusOK, MatchResponse{
		Length: length,
		Key:    query[:length],
		Value:  string(value),
	})
}

func (h *handler) stats(writer http.ResponseWriter, _ *http.Request) {
	writeJSON(writer, http.StatusOK, StatsResponse{
		Entries:                  h.trie.Len(),
		LongestPossibleKeyLength: h.trie.LongestPossibleKeyLength(),
	})
}

// parameter returns the value of the query parameter name,
// and whether it is present. An empty value counts as present.
func parameter(request *http.Request, name string) (value string, ok bool) {
	values, ok := request.URL.Query()[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func writeError(writer http.ResponseWriter, status int, err error) {
	logger.Debugf("responding %d: %s", status, err)
	writeJSON(writer, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(writer http.ResponseWriter, status int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	err := json.NewEncoder(writer).Encode(body)
	if err != nil {
		logger.Warnf("writing response: %s", err)
	}
}

// SetLogLevel sets the level of the query logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}
