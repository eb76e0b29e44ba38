package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"branches-api/internal/entities"
)

var _ BranchRepositoryInterface = (*MemoryBranchRepository)(nil)

// MemoryBranchRepository держит документы в памяти процесса.
// Наружу всегда отдаются копии, чтобы изменения не попадали в хранилище без Save.
type MemoryBranchRepository struct {
	mu       sync.RWMutex
	branches map[string]*entities.Branch
	order    []string
}

func NewMemoryBranchRepository() *MemoryBranchRepository {
	return &MemoryBranchRepository{branches: make(map[string]*entities.Branch)}
}

func (r *MemoryBranchRepository) FindAll(_ context.Context) ([]entities.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	branches := make([]entities.Branch, 0, len(r.order))
	for _, id := range r.order {
		branches = append(branches, *r.branches[id].Clone())
	}
	return branches, nil
}

func (r *MemoryBranchRepository) FindByID(_ context.Context, id string) (*entities.Branch, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	branch, ok := r.branches[id]
	if !ok {
		return nil, false, nil
	}
	return branch.Clone(), true, nil
}

func (r *MemoryBranchRepository) Save(_ context.Context, branch *entities.Branch) (*entities.Branch, error) {
	saved := branch.Clone()
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.branches[saved.ID]; !exists {
		r.order = append(r.order, saved.ID)
	}
	r.branches[saved.ID] = saved
	return saved.Clone(), nil
}

func (r *MemoryBranchRepository) Ping(_ context.Context) error { return nil }
