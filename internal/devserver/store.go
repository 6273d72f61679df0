package devserver

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// user is an account record. The dev server keeps passwords in memory
// only and never persists them anywhere.
type user struct {
	profile  models.UserProfile
	password string
}

type budgetRec struct {
	owner string
	data  models.Budget
}

type incomeRec struct {
	owner string
	data  models.Income
}

type expenseRec struct {
	owner string
	data  models.Expense
}

type uploadRec struct {
	name    string
	content []byte
}

// store is the in-memory state behind the dev server: accounts, finance
// records, and uploaded files, all keyed by uuid.
type store struct {
	mu       sync.Mutex
	users    map[string]*user  // by user ID
	byEmail  map[string]string // email -> user ID
	budgets  map[string]*budgetRec
	incomes  map[string]*incomeRec
	expenses map[string]*expenseRec
	uploads  map[string]*uploadRec

	// resetEmail is the account the pending reset OTP belongs to. One
	// pending reset at a time is enough for a dev fixture.
	resetEmail string
}

func newStore() *store {
	return &store{
		users:    make(map[string]*user),
		byEmail:  make(map[string]string),
		budgets:  make(map[string]*budgetRec),
		incomes:  make(map[string]*incomeRec),
		expenses: make(map[string]*expenseRec),
		uploads:  make(map[string]*uploadRec),
	}
}

func nowStamp() string { return time.Now().UTC().Format(time.RFC3339) }

func currentMonth() string { return time.Now().UTC().Format("2006-01") }

func (s *store) createUser(name, email, password string) (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[email]; taken {
		return nil, false
	}
	id := uuid.NewString()
	now := nowStamp()
	u := &user{
		profile: models.UserProfile{
			ID:        id,
			Name:      name,
			Email:     email,
			Role:      "user",
			CreatedAt: now,
			UpdatedAt: now,
		},
		password: password,
	}
	s.users[id] = u
	s.byEmail[email] = id
	profile := u.profile
	return &profile, true
}

// findByEmail returns a snapshot of the profile registered under email.
func (s *store) findByEmail(email string) (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, false
	}
	profile := s.users[id].profile
	return &profile, true
}

// authenticate checks the password for email and returns the profile
// snapshot on a match.
func (s *store) authenticate(email, password string) (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok || s.users[id].password != password {
		return nil, false
	}
	profile := s.users[id].profile
	return &profile, true
}

// markVerified flags the account as verified and returns the updated
// profile snapshot.
func (s *store) markVerified(id string) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[id]
	u.profile.Verified = true
	u.profile.UpdatedAt = nowStamp()
	return u.profile
}

// userByID returns a snapshot of the profile with the given ID.
func (s *store) userByID(id string) (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	profile := u.profile
	return &profile, true
}

// updateProfile applies a partial update and returns the new snapshot.
func (s *store) updateProfile(id string, req models.UpdateProfileRequest) (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	if req.Name != nil {
		u.profile.Name = *req.Name
	}
	if req.AvatarURL != nil {
		u.profile.AvatarURL = *req.AvatarURL
	}
	if req.Currency != nil {
		u.profile.Currency = *req.Currency
	}
	u.profile.UpdatedAt = nowStamp()
	profile := u.profile
	return &profile, true
}

// beginReset records which account the pending reset OTP belongs to.
func (s *store) beginReset(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[email]; ok {
		s.resetEmail = email
	}
}

// completeReset sets a new password for the account that requested a
// reset, if any, and clears the pending state.
func (s *store) completeReset(password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[s.resetEmail]
	if !ok {
		return false
	}
	s.users[id].password = password
	s.users[id].profile.UpdatedAt = nowStamp()
	s.resetEmail = ""
	return true
}

// setPassword replaces the account password.
func (s *store) setPassword(id, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false
	}
	u.password = password
	u.profile.UpdatedAt = nowStamp()
	return true
}

func (s *store) deleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false
	}
	delete(s.byEmail, u.profile.Email)
	delete(s.users, id)
	for bid, b := range s.budgets {
		if b.owner == id {
			delete(s.budgets, bid)
		}
	}
	for iid, i := range s.incomes {
		if i.owner == id {
			delete(s.incomes, iid)
		}
	}
	for eid, e := range s.expenses {
		if e.owner == id {
			delete(s.expenses, eid)
		}
	}
	return true
}

// paginate slices ids after sorting them newest first by the provided
// creation stamps.
func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (s *store) createBudget(owner string, req models.CreateBudgetRequest) models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowStamp()
	b := models.Budget{
		ID:          uuid.NewString(),
		Amount:      req.Amount,
		Category:    req.Category,
		Month:       currentMonth(),
		IsRecurring: req.IsRecurring,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.budgets[b.ID] = &budgetRec{owner: owner, data: b}
	return b
}

func (s *store) updateBudget(owner, id string, req models.UpdateBudgetRequest) (*models.Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.budgets[id]
	if !ok || rec.owner != owner {
		return nil, false
	}
	if req.Amount != nil {
		rec.data.Amount = *req.Amount
	}
	if req.Category != nil {
		rec.data.Category = *req.Category
	}
	if req.IsRecurring != nil {
		rec.data.IsRecurring = *req.IsRecurring
	}
	rec.data.UpdatedAt = nowStamp()
	b := rec.data
	return &b, true
}

func (s *store) deleteBudget(owner, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.budgets[id]
	if !ok || rec.owner != owner {
		return false
	}
	delete(s.budgets, id)
	return true
}

func (s *store) listBudgets(owner, month string, page, limit int) models.PagedBudgets {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.Budget
	var total float64
	for _, rec := range s.budgets {
		if rec.owner != owner || rec.data.Month != month {
			continue
		}
		all = append(all, rec.data)
		total += rec.data.Amount
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })
	return models.PagedBudgets{
		Budgets:     paginate(all, page, limit),
		Page:        page,
		Limit:       limit,
		Total:       len(all),
		TotalBudget: total,
	}
}

func (s *store) createIncome(owner string, req models.CreateIncomeRequest) models.Income {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowStamp()
	in := models.Income{
		ID:          uuid.NewString(),
		Amount:      req.Amount,
		Source:      req.Source,
		Note:        req.Note,
		IsRecurring: req.IsRecurring,
		Month:       currentMonth(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.incomes[in.ID] = &incomeRec{owner: owner, data: in}
	return in
}

func (s *store) updateIncome(owner, id string, req models.UpdateIncomeRequest) (*models.Income, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.incomes[id]
	if !ok || rec.owner != owner {
		return nil, false
	}
	if req.Amount != nil {
		rec.data.Amount = *req.Amount
	}
	if req.Source != nil {
		rec.data.Source = *req.Source
	}
	if req.IsRecurring != nil {
		rec.data.IsRecurring = *req.IsRecurring
	}
	if req.Note != nil {
		rec.data.Note = *req.Note
	}
	rec.data.UpdatedAt = nowStamp()
	in := rec.data
	return &in, true
}

func (s *store) deleteIncome(owner, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.incomes[id]
	if !ok || rec.owner != owner {
		return false
	}
	delete(s.incomes, id)
	return true
}

func (s *store) listIncomes(owner, month string, page, limit int) models.PagedIncomes {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.Income
	var total float64
	for _, rec := range s.incomes {
		if rec.owner != owner || rec.data.Month != month {
			continue
		}
		all = append(all, rec.data)
		total += rec.data.Amount
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })
	return models.PagedIncomes{
		Income:      paginate(all, page, limit),
		TotalIncome: total,
		Page:        page,
		Limit:       limit,
		Total:       len(all),
	}
}

func (s *store) createExpense(owner string, req models.CreateExpenseRequest) models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowStamp()
	e := models.Expense{
		ID:          uuid.NewString(),
		Amount:      req.Amount,
		Category:    req.Category,
		Note:        req.Note,
		IsRecurring: req.IsRecurring,
		Month:       currentMonth(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.expenses[e.ID] = &expenseRec{owner: owner, data: e}
	return e
}

func (s *store) updateExpense(owner, id string, req models.UpdateExpenseRequest) (*models.Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.expenses[id]
	if !ok || rec.owner != owner {
		return nil, false
	}
	if req.Amount != nil {
		rec.data.Amount = *req.Amount
	}
	if req.Category != nil {
		rec.data.Category = *req.Category
	}
	if req.IsRecurring != nil {
		rec.data.IsRecurring = *req.IsRecurring
	}
	if req.Note != nil {
		rec.data.Note = *req.Note
	}
	rec.data.UpdatedAt = nowStamp()
	e := rec.data
	return &e, true
}

func (s *store) deleteExpense(owner, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.expenses[id]
	if !ok || rec.owner != owner {
		return false
	}
	delete(s.expenses, id)
	return true
}

func (s *store) listExpenses(owner, month string, category models.ExpenseCategory, page, limit int) models.PagedExpenses {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.Expense
	var total float64
	for _, rec := range s.expenses {
		if rec.owner != owner || rec.data.Month != month {
			continue
		}
		if category != "" && category != models.CategoryAll && rec.data.Category != category {
			continue
		}
		all = append(all, rec.data)
		total += rec.data.Amount
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })
	return models.PagedExpenses{
		Expenses:      paginate(all, page, limit),
		TotalExpenses: total,
		Page:          page,
		Limit:         limit,
		Total:         len(all),
	}
}

func (s *store) saveUpload(name string, content []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.uploads[id] = &uploadRec{name: name, content: content}
	return id
}

func (s *store) upload(id string) (*uploadRec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.uploads[id]
	return u, ok
}
