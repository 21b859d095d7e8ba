package gir

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// ArticleRecord is one (title, raw-article-body) pair as extracted from the
// dump, in document order (spec §4.1 "Article-record extractor"). Title is
// the raw text found between <title> tags; canonicalisation is the Title
// normaliser's job (C4), not the extractor's.
type ArticleRecord struct {
	Title string
	Body  string
}

// ExtractOptions controls the extractor's title-line filters (spec §4.1).
type ExtractOptions struct {
	IncludeCategories bool // keep category: pages instead of dropping them
	IncludeRedirects  bool // yield ONLY redirect pages instead of dropping them
	Limit             int  // 0 means unlimited
}

var namespacePrefixes = []string{"wikipedia:", "file:", "portal:", "template:"}

// shouldDropTitle applies the title-line filters from §4.1, independent of
// whether the page is a redirect (that check is separate, see extractPages).
func shouldDropTitle(rawTitle string, opts ExtractOptions) bool {
	lower := strings.ToLower(rawTitle)

	for _, ns := range namespacePrefixes {
		if strings.Contains(lower, ns) {
			return true
		}
	}

	if strings.Contains(lower, "category:") && !opts.IncludeCategories {
		return true
	}

	if strings.HasSuffix(lower, "(disambiguation)") {
		return true
	}

	stripped := strings.Join(strings.Fields(lower), "")
	if strings.HasPrefix(stripped, "listof") {
		return true
	}

	return false
}

// extractTitle pulls the raw text between <title> and </title> out of a
// single XML line; returns "" if the line has no title tag.
func extractTitle(line string) (string, bool) {
	start := strings.Index(line, "<title>")
	if start < 0 {
		return "", false
	}
	start += len("<title>")
	end := strings.Index(line[start:], "</title>")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(line[start : start+end]), true
}

// hasRedirectMarker reports whether line contains a <redirect title="…"/>
// marker.
func hasRedirectMarker(line string) bool {
	return strings.Contains(line, "<redirect")
}

// ExtractArticles streams article records out of the Wikipedia XML dump.
// The returned channel is closed once the stream is exhausted or a fatal
// I/O error occurs; at most one error is sent on the error channel before
// it closes. Per-page malformed input is skipped, not fatal (spec §4.1,
// §7 kind 3). The producer blocks on a bounded channel (spec §5
// backpressure), sized by ChanDepth.
func ExtractArticles(r io.Reader, opts ExtractOptions) (<-chan ArticleRecord, <-chan error) {
	out := make(chan ArticleRecord, ChanDepth())
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		br := bufio.NewReaderSize(r, 1<<20)

		var (
			inPage    bool
			body      strings.Builder
			title     string
			titleSeen bool
			redirect  bool
			emitted   int
			skipped   int
		)

		resetPage := func() {
			inPage = false
			body.Reset()
			title = ""
			titleSeen = false
			redirect = false
		}

		defer func() {
			log.Debug().Int("emitted", emitted).Int("skipped", skipped).Msg("article extraction finished")
		}()

		for {
			if opts.Limit > 0 && emitted >= opts.Limit {
				return
			}

			line, err := br.ReadString('\n')
			if len(line) > 0 {
				trimmed := strings.TrimSpace(line)

				switch {
				case !inPage && strings.Contains(trimmed, "<page>"):
					inPage = true
					body.Reset()
					title = ""
					titleSeen = false
					redirect = false
					continue

				case inPage && strings.Contains(trimmed, "</page>"):
					if !titleSeen {
						// malformed page: no title ever seen
						skipped++
						resetPage()
						continue
					}

					wantRedirect := opts.IncludeRedirects
					if redirect != wantRedirect {
						resetPage()
						continue
					}

					if shouldDropTitle(title, opts) {
						resetPage()
						continue
					}

					rec := ArticleRecord{Title: title, Body: body.String()}
					resetPage()

					out <- rec
					emitted++
					continue

				case inPage:
					if trimmed == "" {
						continue
					}
					if !titleSeen {
						if t, ok := extractTitle(trimmed); ok {
							title = t
							titleSeen = true
						}
					}
					if hasRedirectMarker(trimmed) {
						redirect = true
					}
					body.WriteString(line)
				}
			}

			if err != nil {
				if err != io.EOF {
					log.Error().Err(err).Msg("fatal I/O error while streaming XML dump")
					errc <- err
				} else if inPage {
					// truncated final page: malformed, drop it
					skipped++
				}
				return
			}
		}
	}()

	return out, errc
}
