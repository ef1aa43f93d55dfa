package bar

import (
	"context"
	"testing"
	"time"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/muhammadchandra19/stock-data/pkg/postgresql/pgtest"
	"github.com/stretchr/testify/suite"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	helper *pgtest.TestHelper
	repo   *Repository
	ctx    context.Context
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.helper = pgtest.NewTestHelperWithMigrations(s.T(), "../migrations")
	s.repo = NewRepository(s.helper.GetClient(), logger.NewNopLogger())
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	s.helper.CleanupTables(tableName)
}

func day(offset int) time.Time {
	return time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func (s *RepositoryIntegrationSuite) TestUpsertBatch_LastWriteWins() {
	first := []*barDomain.DailyBar{
		{Symbol: "AAPL", Date: day(0), Open: 180, High: 181, Low: 179, Close: 180.5, Volume: 10000},
	}
	second := []*barDomain.DailyBar{
		{Symbol: "AAPL", Date: day(0), Open: 190, High: 192, Low: 188, Close: 191.25, Volume: 20000},
	}

	s.Require().NoError(s.repo.UpsertBatch(s.ctx, first))
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, second))

	bars, err := s.repo.Latest(s.ctx, "AAPL", barDomain.LatestLimit)
	s.Require().NoError(err)
	s.Require().Len(bars, 1)
	s.Equal(190.0, bars[0].Open)
	s.Equal(192.0, bars[0].High)
	s.Equal(188.0, bars[0].Low)
	s.Equal(191.25, bars[0].Close)
	s.Equal(int64(20000), bars[0].Volume)
	s.True(day(0).Equal(bars[0].Date))
}

func (s *RepositoryIntegrationSuite) TestUpsertBatch_DuplicateKeysInBatch() {
	batch := []*barDomain.DailyBar{
		{Symbol: "AAPL", Date: day(0), Open: 180, High: 181, Low: 179, Close: 180.5, Volume: 10000},
		{Symbol: "AAPL", Date: day(0), Open: 190, High: 192, Low: 188, Close: 191.25, Volume: 20000},
	}

	s.Require().NoError(s.repo.UpsertBatch(s.ctx, batch))

	bars, err := s.repo.Latest(s.ctx, "AAPL", barDomain.LatestLimit)
	s.Require().NoError(err)
	s.Require().Len(bars, 1)
	s.Equal(190.0, bars[0].Open)
	s.Equal(int64(20000), bars[0].Volume)
}

func (s *RepositoryIntegrationSuite) TestUpsertBatch_FailedBatchRollsBack() {
	valid := &barDomain.DailyBar{Symbol: "MSFT", Date: day(1), Open: 1, High: 1, Low: 1, Close: 1, Volume: 1}
	// volume overflows INTEGER, failing the whole statement
	invalid := &barDomain.DailyBar{Symbol: "MSFT", Date: day(2), Open: 1, High: 1, Low: 1, Close: 1, Volume: 1 << 40}

	s.Error(s.repo.UpsertBatch(s.ctx, []*barDomain.DailyBar{valid, invalid}))

	bars, err := s.repo.Latest(s.ctx, "MSFT", barDomain.LatestLimit)
	s.Require().NoError(err)
	s.Empty(bars)
}

func (s *RepositoryIntegrationSuite) TestLatest_LimitAndOrder() {
	var bars []*barDomain.DailyBar
	for i := range 35 {
		bars = append(bars, &barDomain.DailyBar{
			Symbol: "NVDA", Date: day(i), Open: 100, High: 101, Low: 99, Close: 100, Volume: int64(i + 1),
		})
	}
	bars = append(bars, &barDomain.DailyBar{
		Symbol: "AMZN", Date: day(40), Open: 100, High: 101, Low: 99, Close: 100, Volume: 1,
	})
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, bars))

	got, err := s.repo.Latest(s.ctx, "NVDA", barDomain.LatestLimit)
	s.Require().NoError(err)
	s.Require().Len(got, barDomain.LatestLimit)

	s.True(day(34).Equal(got[0].Date))
	s.True(day(5).Equal(got[len(got)-1].Date))
	for i := 1; i < len(got); i++ {
		s.True(got[i-1].Date.After(got[i].Date))
		s.Equal("NVDA", got[i].Symbol)
	}
}

func (s *RepositoryIntegrationSuite) TestLatest_UnknownSymbol() {
	bars, err := s.repo.Latest(s.ctx, "ZZZZ", barDomain.LatestLimit)
	s.Require().NoError(err)
	s.NotNil(bars)
	s.Empty(bars)
}

func (s *RepositoryIntegrationSuite) TestDeleteAll() {
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, []*barDomain.DailyBar{
		{Symbol: "GOOGL", Date: day(0), Open: 1, High: 1, Low: 1, Close: 1, Volume: 1},
		{Symbol: "GOOGL", Date: day(1), Open: 1, High: 1, Low: 1, Close: 1, Volume: 1},
	}))

	s.Require().NoError(s.repo.DeleteAll(s.ctx))

	bars, err := s.repo.Latest(s.ctx, "GOOGL", barDomain.LatestLimit)
	s.Require().NoError(err)
	s.Empty(bars)
}
