package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
)

// In-memory repository fakes. Each embeds its interface so only the methods a
// test exercises need implementing; anything else panics loudly.

type fakeSPACRepo struct {
	repository.SPACRepository
	spacs map[uuid.UUID]*models.SPAC
}

func newFakeSPACRepo(spacs ...*models.SPAC) *fakeSPACRepo {
	repo := &fakeSPACRepo{spacs: make(map[uuid.UUID]*models.SPAC)}
	for _, s := range spacs {
		repo.spacs[s.ID] = s
	}
	return repo
}

func (r *fakeSPACRepo) GetByID(id uuid.UUID) (*models.SPAC, error) {
	spac, ok := r.spacs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *spac
	return &copied, nil
}

func (r *fakeSPACRepo) Update(spac *models.SPAC) error {
	if _, ok := r.spacs[spac.ID]; !ok {
		return sql.ErrNoRows
	}
	copied := *spac
	r.spacs[spac.ID] = &copied
	return nil
}

type fakeTargetRepo struct {
	repository.TargetRepository
	targets map[uuid.UUID]*models.Target
}

func newFakeTargetRepo(targets ...*models.Target) *fakeTargetRepo {
	repo := &fakeTargetRepo{targets: make(map[uuid.UUID]*models.Target)}
	for _, t := range targets {
		repo.targets[t.ID] = t
	}
	return repo
}

func (r *fakeTargetRepo) GetByID(id uuid.UUID) (*models.Target, error) {
	target, ok := r.targets[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *target
	return &copied, nil
}

type pairKey struct {
	targetID uuid.UUID
	spacID   uuid.UUID
}

type fakeFitScoreRepo struct {
	repository.FitScoreRepository
	scores map[pairKey]*models.FitScoreRecord
}

func newFakeFitScoreRepo() *fakeFitScoreRepo {
	return &fakeFitScoreRepo{scores: make(map[pairKey]*models.FitScoreRecord)}
}

func (r *fakeFitScoreRepo) Upsert(score *models.FitScoreRecord) error {
	key := pairKey{targetID: score.TargetID, spacID: score.SPACID}
	if existing, ok := r.scores[key]; ok {
		score.ID = existing.ID
	} else if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	copied := *score
	r.scores[key] = &copied
	return nil
}

func (r *fakeFitScoreRepo) GetByTarget(targetID uuid.UUID) ([]models.FitScoreRecord, error) {
	var records []models.FitScoreRecord
	for key, score := range r.scores {
		if key.targetID == targetID {
			records = append(records, *score)
		}
	}
	return records, nil
}

type fakeFilingRepo struct {
	repository.FilingRepository
	filings map[uuid.UUID]*models.Filing
}

func newFakeFilingRepo(filings ...*models.Filing) *fakeFilingRepo {
	repo := &fakeFilingRepo{filings: make(map[uuid.UUID]*models.Filing)}
	for _, f := range filings {
		repo.filings[f.ID] = f
	}
	return repo
}

func (r *fakeFilingRepo) GetByID(id uuid.UUID) (*models.Filing, error) {
	filing, ok := r.filings[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *filing
	return &copied, nil
}

func (r *fakeFilingRepo) Create(filing *models.Filing) error {
	if filing.ID == uuid.Nil {
		filing.ID = uuid.New()
	}
	copied := *filing
	r.filings[filing.ID] = &copied
	return nil
}

func (r *fakeFilingRepo) Update(filing *models.Filing) error {
	if _, ok := r.filings[filing.ID]; !ok {
		return sql.ErrNoRows
	}
	copied := *filing
	r.filings[filing.ID] = &copied
	return nil
}

func (r *fakeFilingRepo) ExistsByAccession(spacID uuid.UUID, accessionNumber string) (bool, error) {
	for _, f := range r.filings {
		if f.SPACID == spacID && f.AccessionNumber == accessionNumber {
			return true, nil
		}
	}
	return false, nil
}

type fakeTrustRepo struct {
	repository.TrustRepository
	accounts     map[uuid.UUID]*models.TrustAccount // keyed by SPAC ID
	transactions []models.TrustTransaction
}

func newFakeTrustRepo(accounts ...*models.TrustAccount) *fakeTrustRepo {
	repo := &fakeTrustRepo{accounts: make(map[uuid.UUID]*models.TrustAccount)}
	for _, a := range accounts {
		repo.accounts[a.SPACID] = a
	}
	return repo
}

func (r *fakeTrustRepo) GetAccountBySPAC(spacID uuid.UUID) (*models.TrustAccount, error) {
	account, ok := r.accounts[spacID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (r *fakeTrustRepo) UpdateAccount(account *models.TrustAccount) error {
	if _, ok := r.accounts[account.SPACID]; !ok {
		return sql.ErrNoRows
	}
	copied := *account
	r.accounts[account.SPACID] = &copied
	return nil
}

func (r *fakeTrustRepo) CreateTransaction(tx *models.TrustTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	r.transactions = append(r.transactions, *tx)
	return nil
}

// fakeTxManager runs the callback against the same repositories; the tests
// only care that balance and ledger both change.
type fakeTxManager struct {
	repos *repository.Repositories
}

func (m *fakeTxManager) WithTransaction(fn func(repos *repository.Repositories) error) error {
	return fn(m.repos)
}
