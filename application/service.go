package application

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/licensegen/domain"
)

// copyrightPrefix marks the license-file line carried into the report.
const copyrightPrefix = "Copyright "

// ReportService orchestrates the report pipeline:
// fetch dependency graph -> derive one record per dependency -> sorted output.
type ReportService struct {
	fetcher   domain.GraphFetcher
	files     domain.FileReader
	overrides map[string]string
}

// NewReportService creates a new service with the given collaborators.
// overrides maps dependency names to known repository URLs, consulted when
// the scanner metadata omits the repository field.
func NewReportService(
	fetcher domain.GraphFetcher,
	files domain.FileReader,
	overrides map[string]string,
) *ReportService {
	return &ReportService{
		fetcher:   fetcher,
		files:     files,
		overrides: overrides,
	}
}

// Build runs the scanner and derives the full record list, ordered by the
// scanner's "name@version" keys ascending. The same bare name under two
// versions yields two records. Any failure aborts with no partial result.
func (s *ReportService) Build(ctx context.Context) ([]domain.Record, error) {
	graph, err := s.fetcher.FetchGraph(ctx)
	if err != nil {
		return nil, err
	}

	logger.Infof("Scanner reported %d production dependencies", len(graph))

	keys := make([]string, 0, len(graph))
	for key := range graph {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]domain.Record, 0, len(keys))
	for _, key := range keys {
		meta := graph[key]
		name := domain.BareName(key)

		copyright, copyrightErr := s.extractCopyright(meta)
		if copyrightErr != nil {
			return nil, copyrightErr
		}

		license := meta.Licenses.String()
		if license == "" {
			license = domain.LicenseUnknown
		}

		record := domain.Record{
			Component: name,
			Origin:    resolveOrigin(name, meta, s.overrides),
			License:   license,
			Copyright: copyright,
		}
		logger.Debugf("  %s -> origin=%q license=%q", key, record.Origin, record.License)
		records = append(records, record)
	}

	return records, nil
}

// resolveOrigin picks the repository from the metadata, falling back to the
// override table for this exact name, then to the OriginUnknown sentinel.
// A leading https:// scheme is stripped; shorthand host/path values pass
// through unchanged.
func resolveOrigin(name string, meta domain.DependencyMetadata, overrides map[string]string) string {
	origin := meta.Repository
	if origin == "" {
		origin = overrides[name]
	}
	if origin == "" {
		return domain.OriginUnknown
	}
	return strings.TrimPrefix(origin, "https://")
}

// extractCopyright returns the first license-file line starting with
// "Copyright ", with trailing whitespace trimmed. Dependencies without a
// license file get an empty copyright. A referenced file that cannot be
// read fails the whole run.
//
// Only a single line is captured; multi-line copyright blocks are not
// reassembled.
func (s *ReportService) extractCopyright(meta domain.DependencyMetadata) (string, error) {
	if meta.LicenseFile == "" {
		return "", nil
	}

	data, err := s.files.ReadFile(meta.LicenseFile)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrLicenseFileRead, meta.LicenseFile, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, copyrightPrefix) {
			return strings.TrimRightFunc(line, unicode.IsSpace), nil
		}
	}

	return "", nil
}
