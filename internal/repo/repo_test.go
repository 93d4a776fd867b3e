package repo

import (
	"testing"

	"github.com/evgo-rent/backend/internal/pg"
	documentrepo "github.com/evgo-rent/backend/internal/repo/document-repo"
	feerepo "github.com/evgo-rent/backend/internal/repo/fee-repo"
	orderrepo "github.com/evgo-rent/backend/internal/repo/order-repo"
	paymentrepo "github.com/evgo-rent/backend/internal/repo/payment-repo"
	renterrepo "github.com/evgo-rent/backend/internal/repo/renter-repo"
	stationrepo "github.com/evgo-rent/backend/internal/repo/station-repo"
	userrepo "github.com/evgo-rent/backend/internal/repo/user-repo"
	vehiclerepo "github.com/evgo-rent/backend/internal/repo/vehicle-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.RenterRepo)
	assert.NotNil(t, repo.StationRepo)
	assert.NotNil(t, repo.VehicleRepo)
	assert.NotNil(t, repo.DocumentRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.FeeRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &renterrepo.Repository{}, repo.RenterRepo)
	assert.IsType(t, &stationrepo.Repository{}, repo.StationRepo)
	assert.IsType(t, &vehiclerepo.Repository{}, repo.VehicleRepo)
	assert.IsType(t, &documentrepo.Repository{}, repo.DocumentRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &feerepo.Repository{}, repo.FeeRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
