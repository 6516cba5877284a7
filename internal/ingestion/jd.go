package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

// LoadJobDescription reads job-description text from a local file.
func LoadJobDescription(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("failed to read job description %s: %w", path, err)
	}
	text, _, err := decodeText(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return CleanText(text), nil
}

// FetchJobDescription retrieves job-description text from a posting URL.
// It strips navigation and boilerplate via content selectors, and when
// useBrowser is set falls back to headless-browser rendering for SPA pages
// whose static HTML carries too little text.
func FetchJobDescription(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	if verbose {
		log.Printf("[VERBOSE] fetched %d bytes from %s", len(result.HTML), urlStr)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("failed to extract job posting text: %w", err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("[VERBOSE] static content too short (%d chars), rendering with browser", len(text))
		}
		html, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] browser rendering failed: %v, keeping static content", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractMainText(html, fetch.JobPostingSelectors()); extractErr == nil {
			text = rendered
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("no job description text found at %s", urlStr)
	}
	return cleaned, nil
}
