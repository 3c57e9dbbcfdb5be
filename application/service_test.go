package application_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/licensegen/application"
	"github.com/rios0rios0/licensegen/domain"
	testdoubles "github.com/rios0rios0/licensegen/test"
)

// graphFromJSON builds a dependency graph the same way the scanner client
// does, so the licenses field keeps its original string-or-array shape.
func graphFromJSON(t *testing.T, raw string) domain.DependencyGraph {
	t.Helper()

	var graph domain.DependencyGraph
	require.NoError(t, json.Unmarshal([]byte(raw), &graph))
	return graph
}

func TestReportServiceBuild(t *testing.T) {
	t.Parallel()

	t.Run("should build a record from complete metadata", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			Graph: graphFromJSON(t, `{
				"foo@1.0.0": {"repository": "https://github.com/x/foo", "licenses": "MIT"}
			}`),
		}
		svc := application.NewReportService(fetcher, &testdoubles.SpyFileReader{}, nil)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.Record{
			Component: "foo",
			Origin:    "github.com/x/foo",
			License:   "MIT",
			Copyright: "",
		}, records[0])
	})

	t.Run("should fall back to the override table for a known name", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			Graph: graphFromJSON(t, `{"eyes@0.1.0": {"licenses": ["MIT"]}}`),
		}
		overrides := map[string]string{"eyes": "https://github.com/cloudhead/eyes.js"}
		svc := application.NewReportService(fetcher, &testdoubles.SpyFileReader{}, overrides)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "eyes", records[0].Component)
		assert.Equal(t, "github.com/cloudhead/eyes.js", records[0].Origin)
		assert.Equal(t, `["MIT"]`, records[0].License)
	})

	t.Run("should use sentinels for missing repository and licenses", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			Graph: graphFromJSON(t, `{"bar@2.0.0": {}}`),
		}
		svc := application.NewReportService(fetcher, &testdoubles.SpyFileReader{}, nil)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.OriginUnknown, records[0].Origin)
		assert.Equal(t, domain.LicenseUnknown, records[0].License)
	})

	t.Run("should emit one record per key in sorted order", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			Graph: graphFromJSON(t, `{
				"zulu@1.0.0": {"licenses": "MIT"},
				"alpha@2.0.0": {"licenses": "ISC"},
				"alpha@1.0.0": {"licenses": "ISC"},
				"mike@3.1.4": {"licenses": "BSD"}
			}`),
		}
		svc := application.NewReportService(fetcher, &testdoubles.SpyFileReader{}, nil)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, "alpha", records[0].Component)
		assert.Equal(t, "alpha", records[1].Component)
		assert.Equal(t, "mike", records[2].Component)
		assert.Equal(t, "zulu", records[3].Component)
	})

	t.Run("should extract the first copyright line from the license file", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			Graph: graphFromJSON(t, `{
				"foo@1.0.0": {"licenses": "MIT", "licenseFile": "/deps/foo/LICENSE"}
			}`),
		}
		files := &testdoubles.SpyFileReader{
			Files: map[string]string{
				"/deps/foo/LICENSE": "The MIT License\n\nCopyright (c) 2015 Foo Authors  \nCopyright (c) 2016 Someone Else\n",
			},
		}
		svc := application.NewReportService(fetcher, files, nil)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Copyright (c) 2015 Foo Authors", records[0].Copyright)
		assert.Equal(t, []string{"/deps/foo/LICENSE"}, files.ReadPaths)
	})

	t.Run("should leave copyright empty when no line matches", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			Graph: graphFromJSON(t, `{
				"foo@1.0.0": {"licenses": "MIT", "licenseFile": "/deps/foo/LICENSE"}
			}`),
		}
		files := &testdoubles.SpyFileReader{
			Files: map[string]string{
				"/deps/foo/LICENSE": "Permission is hereby granted, free of charge...\n",
			},
		}
		svc := application.NewReportService(fetcher, files, nil)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].Copyright)
	})

	t.Run("should not carry a copyright over to the next record", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			Graph: graphFromJSON(t, `{
				"aaa@1.0.0": {"licenses": "MIT", "licenseFile": "/deps/aaa/LICENSE"},
				"bbb@1.0.0": {"licenses": "ISC"}
			}`),
		}
		files := &testdoubles.SpyFileReader{
			Files: map[string]string{
				"/deps/aaa/LICENSE": "Copyright (c) 2020 AAA Authors\n",
			},
		}
		svc := application.NewReportService(fetcher, files, nil)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Copyright (c) 2020 AAA Authors", records[0].Copyright)
		assert.Empty(t, records[1].Copyright)
	})

	t.Run("should fail when a referenced license file is unreadable", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			Graph: graphFromJSON(t, `{
				"foo@1.0.0": {"licenses": "MIT", "licenseFile": "/deps/foo/LICENSE"}
			}`),
		}
		files := &testdoubles.SpyFileReader{
			ReadErr: errors.New("permission denied"),
		}
		svc := application.NewReportService(fetcher, files, nil)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.Error(t, err)
		assert.Nil(t, records)
		assert.ErrorIs(t, err, domain.ErrLicenseFileRead)
		assert.Contains(t, err.Error(), "/deps/foo/LICENSE")
	})

	t.Run("should propagate a scanner failure", func(t *testing.T) {
		t.Parallel()

		// given
		fetcher := &testdoubles.SpyGraphFetcher{
			FetchErr: domain.ErrScanFailed,
		}
		svc := application.NewReportService(fetcher, &testdoubles.SpyFileReader{}, nil)

		// when
		records, err := svc.Build(context.Background())

		// then
		require.Error(t, err)
		assert.Nil(t, records)
		assert.ErrorIs(t, err, domain.ErrScanFailed)
		assert.Equal(t, 1, fetcher.FetchCalls)
	})
}

func TestResolveOrigin(t *testing.T) {
	t.Parallel()

	t.Run("should strip the https scheme from the repository", func(t *testing.T) {
		t.Parallel()

		// given
		meta := domain.DependencyMetadata{Repository: "https://github.com/x/foo"}

		// when
		origin := application.ResolveOrigin("foo", meta, nil)

		// then
		assert.Equal(t, "github.com/x/foo", origin)
	})

	t.Run("should pass a shorthand host path through unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		meta := domain.DependencyMetadata{Repository: "github.com/x/foo"}

		// when
		origin := application.ResolveOrigin("foo", meta, nil)

		// then
		assert.Equal(t, "github.com/x/foo", origin)
	})

	t.Run("should strip the scheme from an override value too", func(t *testing.T) {
		t.Parallel()

		// given
		meta := domain.DependencyMetadata{}
		overrides := map[string]string{"eyes": "https://github.com/cloudhead/eyes.js"}

		// when
		origin := application.ResolveOrigin("eyes", meta, overrides)

		// then
		assert.Equal(t, "github.com/cloudhead/eyes.js", origin)
	})

	t.Run("should prefer the metadata repository over an override", func(t *testing.T) {
		t.Parallel()

		// given
		meta := domain.DependencyMetadata{Repository: "https://example.com/real"}
		overrides := map[string]string{"foo": "https://example.com/override"}

		// when
		origin := application.ResolveOrigin("foo", meta, overrides)

		// then
		assert.Equal(t, "example.com/real", origin)
	})

	t.Run("should return the sentinel when nothing is known", func(t *testing.T) {
		t.Parallel()

		// given
		meta := domain.DependencyMetadata{}

		// when
		origin := application.ResolveOrigin("unknown-dep", meta, map[string]string{})

		// then
		assert.Equal(t, domain.OriginUnknown, origin)
	})
}
