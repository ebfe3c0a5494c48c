package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
)

func newSearchFixture(t *testing.T) (*treeFixture, services.SearchService, string) {
	t.Helper()
	fx := newTreeFixture()
	search := NewSearchService(fx.folders, fx.files, testLogger())

	ctx := context.Background()
	root, err := fx.tree.ResolveRoot(ctx, "owner-1", nil)
	require.NoError(t, err)
	return fx, search, root.ID
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	fx, search, rootID := newSearchFixture(t)
	ctx := context.Background()

	_, err := fx.tree.CreateFolder(ctx, "owner-1", &services.CreateFolderRequest{
		Name: "Quarterly Reports", ParentID: &rootID,
	})
	require.NoError(t, err)
	fx.uploadPDF(t, ctx, "owner-1", rootID, "Q3 quarterly summary.pdf")
	fx.uploadPDF(t, ctx, "owner-1", rootID, "unrelated.pdf")

	results, err := search.Search(ctx, "owner-1", "QUARTER")
	require.NoError(t, err)
	require.Len(t, results.Folders, 1)
	require.Len(t, results.Files, 1)
	require.Equal(t, "Quarterly Reports", results.Folders[0].Name)
	require.Equal(t, "Q3 quarterly summary.pdf", results.Files[0].Name)
}

func TestSearchBlankQueryReturnsEmpty(t *testing.T) {
	fx, search, rootID := newSearchFixture(t)
	ctx := context.Background()

	fx.uploadPDF(t, ctx, "owner-1", rootID, "doc.pdf")

	for _, q := range []string{"", "   ", "\t"} {
		results, err := search.Search(ctx, "owner-1", q)
		require.NoError(t, err)
		require.Empty(t, results.Folders)
		require.Empty(t, results.Files)
		// Empty, not nil: the wire shape stays []
		require.NotNil(t, results.Folders)
		require.NotNil(t, results.Files)
	}
}

func TestSearchEscapesWildcards(t *testing.T) {
	fx, search, rootID := newSearchFixture(t)
	ctx := context.Background()

	fx.uploadPDF(t, ctx, "owner-1", rootID, "100% complete.pdf")
	fx.uploadPDF(t, ctx, "owner-1", rootID, "100x complete.pdf")

	results, err := search.Search(ctx, "owner-1", "100%")
	require.NoError(t, err)
	require.Len(t, results.Files, 1)
	require.Equal(t, "100% complete.pdf", results.Files[0].Name)

	underscore, err := search.Search(ctx, "owner-1", "100_")
	require.NoError(t, err)
	require.Empty(t, underscore.Files)
}

func TestSearchScopedToOwner(t *testing.T) {
	fx, search, rootID := newSearchFixture(t)
	ctx := context.Background()

	fx.uploadPDF(t, ctx, "owner-1", rootID, "findings.pdf")

	results, err := search.Search(ctx, "owner-2", "findings")
	require.NoError(t, err)
	require.Empty(t, results.Folders)
	require.Empty(t, results.Files)
}
