package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	"pitemp"
	"pitemp/internal/logger"
)

// requestTimeout bounds each store call so a hung connection cannot stall
// the loop forever.
const requestTimeout = 10 * time.Second

const resultCreated = "created"

// ES publishes readings to an Elasticsearch index.
type ES struct {
	client *elasticsearch.Client
	index  string
	log    *logger.Logger
}

// Address builds the store URL from host and port, defaulting to http when
// the host carries no scheme.
func Address(host string, port int) string {
	if strings.Contains(host, "://") {
		return fmt.Sprintf("%s:%d", host, port)
	}
	return fmt.Sprintf("http://%s:%d", host, port)
}

// NewES constructs an Elasticsearch-backed publisher for the given address
// and index.
func NewES(address, index string, log *logger.Logger) (*ES, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{address},
	})
	if err != nil {
		return nil, fmt.Errorf("new elasticsearch client: %w", err)
	}
	return &ES{client: client, index: index, log: log}, nil
}

// EnsureIndex creates the target index if it does not exist. An "already
// exists" response (HTTP 400) counts as success.
func (p *ES) EnsureIndex(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := p.client.Indices.Create(p.index, p.client.Indices.Create.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create index %q: %w", p.index, err)
	}
	defer closeBody(res)

	if res.IsError() && res.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("create index %q: %s", p.index, res.Status())
	}
	return nil
}

// Publish serializes the reading and issues one index request. Any outcome
// other than a "created" result is reported as a failure; the caller decides
// what to do with the dropped data point.
func (p *ES) Publish(ctx context.Context, r pitemp.Reading) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode reading: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req := esapi.IndexRequest{
		Index:      p.index,
		DocumentID: uuid.NewString(),
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, p.client)
	if err != nil {
		return fmt.Errorf("index reading: %w", err)
	}
	defer closeBody(res)

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrNotCreated, res.Status())
	}

	var out struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode index response: %w", err)
	}
	if out.Result != resultCreated {
		return fmt.Errorf("%w: result %q", ErrNotCreated, out.Result)
	}
	if p.log != nil {
		p.log.Debugw("document indexed", "index", p.index, "location", r.Location)
	}
	return nil
}

func closeBody(res *esapi.Response) {
	if res.Body != nil {
		_ = res.Body.Close()
	}
}
