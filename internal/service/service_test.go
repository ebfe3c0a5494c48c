package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/SKirov82/data-room-application-mvp/internal/domain"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/repositories"
)

// In-memory fakes of the repository, transaction and blob-store
// contracts. They mirror the postgres implementations' semantics
// (owner scoping, (created_at, id) ordering, batch delete row counts)
// closely enough to exercise the engines without a database.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// nextCreatedAt hands out strictly increasing timestamps so the
// fakes reproduce the database's insertion order.
var tickCounter atomic.Int64

func nextCreatedAt() time.Time {
	return time.Unix(0, tickCounter.Add(1)).UTC()
}

type memFolderRepo struct {
	mu      sync.Mutex
	folders map[string]*models.Folder
}

func newMemFolderRepo() *memFolderRepo {
	return &memFolderRepo{folders: make(map[string]*models.Folder)}
}

func (r *memFolderRepo) Create(_ context.Context, folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	folder.ID = uuid.NewString()
	folder.CreatedAt = nextCreatedAt()
	folder.UpdatedAt = folder.CreatedAt
	cp := *folder
	r.folders[folder.ID] = &cp
	return nil
}

func (r *memFolderRepo) GetByID(_ context.Context, id, ownerID string) (*models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.folders[id]
	if !ok || f.OwnerID != ownerID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	cp := *f
	return &cp, nil
}

func (r *memFolderRepo) Update(_ context.Context, folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.folders[folder.ID]
	if !ok || f.OwnerID != folder.OwnerID {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}
	cp := *folder
	r.folders[folder.ID] = &cp
	return nil
}

func (r *memFolderRepo) DeleteBatch(_ context.Context, ids []string, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := 0
	for _, id := range ids {
		if f, ok := r.folders[id]; ok && f.OwnerID == ownerID {
			delete(r.folders, id)
			found++
		}
	}
	if found != len(ids) {
		return fmt.Errorf("folder batch partially gone: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *memFolderRepo) ListChildren(_ context.Context, parentID, ownerID string, limit, offset int) ([]models.Folder, error) {
	all := r.childrenOf(parentID, ownerID)
	return pageOf(all, limit, offset), nil
}

func (r *memFolderRepo) CountChildren(_ context.Context, parentID, ownerID string) (int, error) {
	return len(r.childrenOf(parentID, ownerID)), nil
}

func (r *memFolderRepo) ListChildIDs(_ context.Context, parentID, ownerID string) ([]string, error) {
	var ids []string
	for _, f := range r.childrenOf(parentID, ownerID) {
		ids = append(ids, f.ID)
	}
	return ids, nil
}

func (r *memFolderRepo) ListRoots(_ context.Context, ownerID string) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var roots []models.Folder
	for _, f := range r.folders {
		if f.OwnerID == ownerID && f.ParentID == nil {
			roots = append(roots, *f)
		}
	}
	sortStable(roots)
	return roots, nil
}

func (r *memFolderRepo) SearchByName(_ context.Context, ownerID, pattern string, limit int) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := likeNeedle(pattern)
	var matches []models.Folder
	for _, f := range r.folders {
		if f.OwnerID == ownerID && strings.Contains(strings.ToLower(f.Name), needle) {
			matches = append(matches, *f)
		}
	}
	sortStable(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *memFolderRepo) childrenOf(parentID, ownerID string) []models.Folder {
	r.mu.Lock()
	defer r.mu.Unlock()
	var children []models.Folder
	for _, f := range r.folders {
		if f.OwnerID == ownerID && f.ParentID != nil && *f.ParentID == parentID {
			children = append(children, *f)
		}
	}
	sortStable(children)
	return children
}

type memFileRepo struct {
	mu    sync.Mutex
	files map[string]*models.File
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{files: make(map[string]*models.File)}
}

func (r *memFileRepo) Create(_ context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	file.ID = uuid.NewString()
	file.CreatedAt = nextCreatedAt()
	file.UpdatedAt = file.CreatedAt
	cp := *file
	r.files[file.ID] = &cp
	return nil
}

func (r *memFileRepo) GetByID(_ context.Context, id, ownerID string) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok || f.OwnerID != ownerID {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	cp := *f
	return &cp, nil
}

func (r *memFileRepo) Update(_ context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[file.ID]
	if !ok || f.OwnerID != file.OwnerID {
		return fmt.Errorf("file %s: %w", file.ID, domain.ErrNotFound)
	}
	cp := *file
	r.files[file.ID] = &cp
	return nil
}

func (r *memFileRepo) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok || f.OwnerID != ownerID {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	delete(r.files, id)
	return nil
}

func (r *memFileRepo) DeleteBatch(_ context.Context, ids []string, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if f, ok := r.files[id]; ok && f.OwnerID == ownerID {
			delete(r.files, id)
		}
	}
	return nil
}

func (r *memFileRepo) ListByFolder(_ context.Context, folderID, ownerID string, limit, offset int) ([]models.File, error) {
	all := r.filesIn(ownerID, folderID)
	return pageOf(all, limit, offset), nil
}

func (r *memFileRepo) CountByFolder(_ context.Context, folderID, ownerID string) (int, error) {
	return len(r.filesIn(ownerID, folderID)), nil
}

func (r *memFileRepo) ListByFolders(_ context.Context, folderIDs []string, ownerID string) ([]models.File, error) {
	var all []models.File
	for _, folderID := range folderIDs {
		all = append(all, r.filesIn(ownerID, folderID)...)
	}
	return all, nil
}

func (r *memFileRepo) SearchByName(_ context.Context, ownerID, pattern string, limit int) ([]models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := likeNeedle(pattern)
	var matches []models.File
	for _, f := range r.files {
		if f.OwnerID == ownerID && strings.Contains(strings.ToLower(f.Name), needle) {
			matches = append(matches, *f)
		}
	}
	sortStable(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *memFileRepo) filesIn(ownerID, folderID string) []models.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	var files []models.File
	for _, f := range r.files {
		if f.OwnerID == ownerID && f.FolderID == folderID {
			files = append(files, *f)
		}
	}
	sortStable(files)
	return files
}

type memBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: make(map[string][]byte)}
}

func (s *memBlobStore) Put(_ context.Context, content io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := uuid.NewString()
	s.blobs[key] = data
	return key, nil
}

func (s *memBlobStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memBlobStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

func (s *memBlobStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

// nopTxManager runs the function directly; the fakes have no
// transactions to join.
type nopTxManager struct{}

func (nopTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// failingTxManager refuses every transaction, standing in for a commit
// or begin failure.
type failingTxManager struct {
	err error
}

func (m failingTxManager) ExecTx(context.Context, repositories.TxFn) error {
	return m.err
}

// markingTxManager tags the context it hands to the transaction body so
// wrapped repositories can tell whether a call ran inside it.
type txMarker struct{}

type markingTxManager struct {
	calls int
}

func (m *markingTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.calls++
	return fn(context.WithValue(ctx, txMarker{}, true))
}

func inTx(ctx context.Context) bool {
	ok, _ := ctx.Value(txMarker{}).(bool)
	return ok
}

// txCheckedFolderRepo records whether the cascade's folder calls saw the
// transaction context.
type txCheckedFolderRepo struct {
	*memFolderRepo
	sawTx map[string]bool
}

func (r *txCheckedFolderRepo) ListChildIDs(ctx context.Context, parentID, ownerID string) ([]string, error) {
	r.sawTx["folders.ListChildIDs"] = inTx(ctx)
	return r.memFolderRepo.ListChildIDs(ctx, parentID, ownerID)
}

func (r *txCheckedFolderRepo) DeleteBatch(ctx context.Context, ids []string, ownerID string) error {
	r.sawTx["folders.DeleteBatch"] = inTx(ctx)
	return r.memFolderRepo.DeleteBatch(ctx, ids, ownerID)
}

type txCheckedFileRepo struct {
	*memFileRepo
	sawTx map[string]bool
}

func (r *txCheckedFileRepo) ListByFolders(ctx context.Context, folderIDs []string, ownerID string) ([]models.File, error) {
	r.sawTx["files.ListByFolders"] = inTx(ctx)
	return r.memFileRepo.ListByFolders(ctx, folderIDs, ownerID)
}

func (r *txCheckedFileRepo) DeleteBatch(ctx context.Context, ids []string, ownerID string) error {
	r.sawTx["files.DeleteBatch"] = inTx(ctx)
	return r.memFileRepo.DeleteBatch(ctx, ids, ownerID)
}

// brokenFolderRepo fails batch deletes, simulating a mid-transaction
// statement error.
type brokenFolderRepo struct {
	*memFolderRepo
	deleteErr error
}

func (r *brokenFolderRepo) DeleteBatch(context.Context, []string, string) error {
	return r.deleteErr
}

// sortStable orders by (created_at, id) the way the postgres layer does.
func sortStable[T interface {
	models.Folder | models.File
}](items []T) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := createdAt(items[i])
		tj, idj := createdAt(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi < idj
	})
}

func createdAt[T interface {
	models.Folder | models.File
}](item T) (time.Time, string) {
	switch v := any(item).(type) {
	case models.Folder:
		return v.CreatedAt, v.ID
	case models.File:
		return v.CreatedAt, v.ID
	}
	return time.Time{}, ""
}

func pageOf[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// likeNeedle turns an escaped ILIKE pattern back into the plain
// lowercase substring the fakes match with.
func likeNeedle(pattern string) string {
	p := strings.TrimPrefix(pattern, "%")
	p = strings.TrimSuffix(p, "%")
	r := strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`)
	return strings.ToLower(r.Replace(p))
}
