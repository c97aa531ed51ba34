package db

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestListSplitsTags(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "name", "eta", "tags", "lat", "lng", "type"}).
		AddRow("hosp_001", "City General Hospital", "6 min", "Emergency, Surgery,Cardiology", 40.7128, -74.0060, "hospital").
		AddRow("hosp_002", "Bayview Medical Center", "9 min", "", 40.7589, -73.9851, "hospital")

	mock.ExpectQuery(`SELECT id, name, eta, tags, lat, lng, type FROM hospitals ORDER BY id`).
		WillReturnRows(rows)

	repo := NewHospitalRepo(mock)
	got, err := repo.List(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, got, 2) {
		assert.Equal(t, []string{"Emergency", "Surgery", "Cardiology"}, got[0].Tags)
		assert.Nil(t, got[1].Tags)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, eta, tags, lat, lng, type FROM hospitals WHERE id`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "eta", "tags", "lat", "lng", "type"}))

	repo := NewHospitalRepo(mock)
	got, err := repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM hospitals`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	repo := NewHospitalRepo(mock)
	assert.NoError(t, repo.Seed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedInsertsWhenEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM hospitals`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	for range SeedHospitals {
		mock.ExpectExec(`INSERT INTO hospitals \(`).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	repo := NewHospitalRepo(mock)
	assert.NoError(t, repo.Seed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateETA(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE hospitals SET eta`).
		WithArgs("hosp_001", "4 min").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewHospitalRepo(mock)
	assert.NoError(t, repo.UpdateETA(context.Background(), "hosp_001", "4 min"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
