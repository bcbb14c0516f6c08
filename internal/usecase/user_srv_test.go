package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"user-management/internal/data/entity"
	"user-management/internal/data/repository"
	"user-management/internal/dto/request"
	"user-management/pkg/utils"

	"go.uber.org/zap"
)

// stubUserRepo is an in-memory UserRepository. It enforces the same unique
// constraints the real schema does.
type stubUserRepo struct {
	nextID int64
	users  map[int64]*entity.User

	createErr error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		nextID: 1,
		users:  make(map[int64]*entity.User),
	}
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepo) EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error) {
	for _, u := range s.users {
		if u.Email == email && u.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []*entity.User
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		copied := *s.users[ids[i]]
		result = append(result, &copied)
	}
	return result, nil
}

func (s *stubUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, u := range s.users {
		if u.Email == user.Email && u.ID != user.ID {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newTestUserService(repo repository.UserRepository) UserService {
	return NewUserService(repo, zap.NewNop())
}

func registerReq(name, phone, email, username, password string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     name,
		Phone:    phone,
		Email:    email,
		Username: username,
		Password: password,
	}
}

func TestRegisterAssignsIDAndTimestamps(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	resp, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if resp.ID <= 0 {
		t.Errorf("expected positive id, got %d", resp.ID)
	}
	if resp.CreatedAt.IsZero() {
		t.Error("expected fechaCreacion to be set")
	}
	if resp.UpdatedAt != nil {
		t.Error("registration response must not carry fechaActualizacion")
	}

	stored, err := repo.FindByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}
	if stored.PasswordHash == "p1" {
		t.Error("password must not be stored in plaintext")
	}
	if !utils.CheckPasswordHash("p1", stored.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterCollectsBothConflicts(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1")); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	_, err := svc.Register(context.Background(), registerReq("Bob", "666", "a@x.com", "ana1", "p2"))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 2 {
		t.Fatalf("expected both conflicts reported, got %v", ve.Errors)
	}
	if ve.Errors[0] != msgEmailTaken || ve.Errors[1] != msgUsernameTaken {
		t.Errorf("unexpected conflict messages: %v", ve.Errors)
	}
}

func TestRegisterSingleConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1")); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	_, err := svc.Register(context.Background(), registerReq("Bob", "666", "b@x.com", "ana1", "p2"))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0] != msgUsernameTaken {
		t.Errorf("unexpected conflict messages: %v", ve.Errors)
	}
}

func TestRegisterConstraintBackstop(t *testing.T) {
	// The pre-check passes (empty store) but the insert itself trips the
	// unique constraint, as happens when two registrations race.
	repo := newStubUserRepo()
	repo.createErr = repository.ErrDuplicateEmail
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1"))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0] != msgEmailTaken {
		t.Errorf("unexpected messages: %v", ve.Errors)
	}
}

func TestGetAllPaginationLaw(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	const total = 25
	for i := 0; i < total; i++ {
		now := time.Now().UTC()
		user := &entity.User{
			Name:      "User",
			Phone:     "555",
			Email:     fmt.Sprintf("u%d@x.com", i),
			Username:  fmt.Sprintf("user%d", i),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(context.Background(), user); err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
	}

	cases := []struct {
		page, pageSize int
		wantLen        int
		wantPage       int
		wantPageSize   int
		wantPages      int
	}{
		{1, 10, 10, 1, 10, 3},
		{3, 10, 5, 3, 10, 3},
		{4, 10, 0, 4, 10, 3},
		{0, 0, 10, 1, 10, 3},   // both coerced to defaults
		{-5, -1, 10, 1, 10, 3}, // negative coerced to defaults
		{1, 25, 25, 1, 25, 1},
		{2, 7, 7, 2, 7, 4},
	}

	for _, tc := range cases {
		result, err := svc.GetAll(context.Background(), &request.PaginatedRequest{Page: tc.page, PageSize: tc.pageSize})
		if err != nil {
			t.Fatalf("page=%d pageSize=%d: %v", tc.page, tc.pageSize, err)
		}

		if len(result.Data) != tc.wantLen {
			t.Errorf("page=%d pageSize=%d: got %d items, want %d", tc.page, tc.pageSize, len(result.Data), tc.wantLen)
		}
		meta := result.Pagination
		if meta.CurrentPage != tc.wantPage || meta.PageSize != tc.wantPageSize {
			t.Errorf("page=%d pageSize=%d: meta page/pageSize = %d/%d, want %d/%d",
				tc.page, tc.pageSize, meta.CurrentPage, meta.PageSize, tc.wantPage, tc.wantPageSize)
		}
		if meta.TotalItems != total {
			t.Errorf("totalItems = %d, want %d", meta.TotalItems, total)
		}
		if meta.TotalPages != tc.wantPages {
			t.Errorf("page=%d pageSize=%d: totalPages = %d, want %d", tc.page, tc.pageSize, meta.TotalPages, tc.wantPages)
		}

		// Returned slice is ordered by ascending id
		for i := 1; i < len(result.Data); i++ {
			if result.Data[i].ID <= result.Data[i-1].ID {
				t.Errorf("result not ordered by id: %d before %d", result.Data[i-1].ID, result.Data[i].ID)
			}
		}
	}
}

func TestUpdatePreservesImmutableFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	before, _ := repo.FindByID(context.Background(), created.ID)

	updated, err := svc.Update(context.Background(), created.ID, &request.UpdateUserRequest{
		Name:     "Ana María",
		Phone:    "777",
		Email:    "ana@x.com",
		Password: "newpass",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("id changed: %d -> %d", created.ID, updated.ID)
	}
	if updated.Username != "ana1" {
		t.Errorf("username changed to %q", updated.Username)
	}
	if !updated.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("fechaCreacion changed: %v -> %v", before.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt == nil {
		t.Fatal("update response missing fechaActualizacion")
	}
	if updated.UpdatedAt.Before(before.UpdatedAt) {
		t.Errorf("fechaActualizacion went backwards: %v -> %v", before.UpdatedAt, updated.UpdatedAt)
	}

	after, _ := repo.FindByID(context.Background(), created.ID)
	if after.Name != "Ana María" || after.Phone != "777" || after.Email != "ana@x.com" {
		t.Errorf("mutable fields not overwritten: %+v", after)
	}
	if !utils.CheckPasswordHash("newpass", after.PasswordHash) {
		t.Error("password not updated")
	}
}

func TestUpdateEmptyPasswordKeepsOldOne(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	before, _ := repo.FindByID(context.Background(), created.ID)

	for _, password := range []string{"", "   "} {
		if _, err := svc.Update(context.Background(), created.ID, &request.UpdateUserRequest{
			Name:     "Ana",
			Phone:    "555",
			Email:    "a@x.com",
			Password: password,
		}); err != nil {
			t.Fatalf("update with password %q: %v", password, err)
		}

		after, _ := repo.FindByID(context.Background(), created.ID)
		if after.PasswordHash != before.PasswordHash {
			t.Errorf("password changed on empty input %q", password)
		}
	}
}

func TestUpdateEmailCollision(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1")); err != nil {
		t.Fatalf("register ana: %v", err)
	}
	bob, err := svc.Register(context.Background(), registerReq("Bob", "666", "b@x.com", "bob1", "p2"))
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}

	_, err = svc.Update(context.Background(), bob.ID, &request.UpdateUserRequest{
		Name:  "Bob",
		Phone: "666",
		Email: "a@x.com",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0] != msgEmailTakenByOther {
		t.Errorf("unexpected messages: %v", ve.Errors)
	}
}

func TestUpdateKeepingOwnEmailIsAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, &request.UpdateUserRequest{
		Name:  "Ana",
		Phone: "555",
		Email: "a@x.com",
	}); err != nil {
		t.Fatalf("update with own email must succeed: %v", err)
	}
}

func TestUpdateConstraintBackstop(t *testing.T) {
	// The pre-check passes but the UPDATE itself trips the email unique
	// constraint (another user claimed the email in between). The message
	// must match the pre-check path exactly.
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	repo.updateErr = repository.ErrDuplicateEmail

	_, err = svc.Update(context.Background(), created.ID, &request.UpdateUserRequest{
		Name:  "Ana",
		Phone: "555",
		Email: "b@x.com",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0] != msgEmailTakenByOther {
		t.Errorf("unexpected messages: %v", ve.Errors)
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	_, err := svc.Update(context.Background(), 42, &request.UpdateUserRequest{
		Name:  "Nadie",
		Phone: "000",
		Email: "n@x.com",
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTwice(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.Register(context.Background(), registerReq("Ana", "555", "a@x.com", "ana1", "p1"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	if _, err := svc.GetByID(context.Background(), 99); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
