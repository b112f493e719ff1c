// Package fetch is the network capability handed to the collector: an
// idempotent GET with a bounded timeout and an observable status code.
package fetch

import (
	"context"
	"crypto/tls"
	"regexp"
	"time"

	"gridrates/lib/restyutil"
	"gridrates/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = time.Second * 15

// several utility sites 403 plain Go clients, pretend to be a browser
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Result struct {
	StatusCode int
	Body       []byte
}

func (r Result) Ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) (Result, error)
}

type Options struct {
	// zero falls back to DefaultTimeout
	Timeout time.Duration
	// several provincial rate pages sit behind misconfigured
	// certificate chains
	InsecureSkipVerify bool
	// route requests through the cloudflare bypass transport
	CloudflareBypass bool
	// when set, every fetched body is dumped under this directory
	// for debugging extraction misses
	DumpDir string
}

type Client struct {
	http *resty.Client
	dump *restyutil.FilesystemOutput
}

func NewClient(opts Options) Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)
	if opts.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	telemetry.InstrumentResty(client, "gridrates.lib.fetch")

	var dump *restyutil.FilesystemOutput
	if opts.DumpDir != "" {
		out := restyutil.NewFilesystemOutput(opts.DumpDir)
		dump = &out
	}

	return Client{http: client, dump: dump}
}

func (c Client) Fetch(ctx context.Context, url string) (Result, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return Result{}, err
	}
	if c.dump != nil {
		c.dump.Write(dumpName(url), res.String())
	}
	return Result{
		StatusCode: res.StatusCode(),
		Body:       res.Body(),
	}, nil
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func dumpName(url string) string {
	return unsafeNameChars.ReplaceAllString(url, "_") + ".html"
}
