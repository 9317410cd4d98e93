package board

import (
	"context"
	"testing"
	"time"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)

func TestPostNotice(t *testing.T) {
	t.Parallel()

	s := NewBoardService(WithClock(func() time.Time { return fixedNow }))

	notice, err := s.PostNotice(context.Background(), "  New emission norms  ")
	require.NoError(t, err)
	assert.Equal(t, "New emission norms", notice.Text)
	assert.Equal(t, fixedNow, notice.Date)
	assert.Equal(t, []domain.Notice{notice}, s.Notices())

	_, err = s.PostNotice(context.Background(), " ")
	require.ErrorIs(t, err, constants.ErrInvalidArgument)
	assert.Len(t, s.Notices(), 1)
}

func TestStartAuction(t *testing.T) {
	t.Parallel()

	s := NewBoardService(WithClock(func() time.Time { return fixedNow }))

	auction, err := s.StartAuction(context.Background(), "Coal Block B", decimal.NewFromInt(250000))
	require.NoError(t, err)
	assert.Equal(t, domain.AuctionStatusOpen, auction.Status)
	assert.Equal(t, "250000", auction.Reserve.String())
	assert.Equal(t, fixedNow, auction.CreatedAt)

	auctions := s.Auctions()
	require.Len(t, auctions, 1)
	assert.Equal(t, auction, auctions[0])
}

func TestStartAuction_InvalidLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	s := NewBoardService()
	s.Seed(nil, []domain.Auction{{Name: "Coal Block A", Reserve: decimal.NewFromInt(1000000), Status: domain.AuctionStatusOpen}})

	for _, reserve := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := s.StartAuction(context.Background(), "Coal Block C", reserve)
		require.ErrorIs(t, err, constants.ErrInvalidArgument)
	}

	_, err := s.StartAuction(context.Background(), "", decimal.NewFromInt(10))
	require.ErrorIs(t, err, constants.ErrInvalidArgument)

	assert.Len(t, s.Auctions(), 1)
}

func TestSeed(t *testing.T) {
	t.Parallel()

	s := NewBoardService()
	s.Seed([]domain.Notice{{Date: fixedNow, Text: "seeded"}}, nil)

	_, err := s.PostNotice(context.Background(), "later")
	require.NoError(t, err)

	notices := s.Notices()
	require.Len(t, notices, 2)
	assert.Equal(t, "seeded", notices[0].Text)
	assert.Equal(t, "later", notices[1].Text)
}
