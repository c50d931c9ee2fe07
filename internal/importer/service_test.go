package importer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/statements/internal/extract"
	"github.com/MrJamesThe3rd/statements/internal/importer"
	"github.com/MrJamesThe3rd/statements/internal/importer/generic"
	"github.com/MrJamesThe3rd/statements/internal/importer/scan"
	"github.com/MrJamesThe3rd/statements/internal/importer/truist"
	"github.com/MrJamesThe3rd/statements/internal/normalize"
	"github.com/MrJamesThe3rd/statements/internal/statement"
	"github.com/MrJamesThe3rd/statements/internal/transaction"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(e importer.Extractor, opts ...importer.ServiceOption) *importer.Service {
	opts = append([]importer.ServiceOption{importer.WithLogger(discard())}, opts...)
	return importer.NewService(e, importer.DefaultSelector(), opts...)
}

func TestService_Parse(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *importer.MockExtractor)
		check     func(t *testing.T, res statement.Result)
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *importer.MockExtractor) {
				m.EXPECT().
					Extract(gomock.Any(), "chase.pdf").
					Return(extract.NewDocument([]string{chaseStatement}), nil)
			},
			check: func(t *testing.T, res statement.Result) {
				assert.True(t, res.Success)
				assert.Equal(t, "Chase", res.Institution)
				assert.Equal(t, statement.AccountCreditCard, res.AccountType)
				require.Len(t, res.Transactions, 2)

				starbucks := res.Transactions[0]
				assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), starbucks.Date)
				assert.Equal(t, "STARBUCKS #123", starbucks.Merchant)
				assert.True(t, decimal.RequireFromString("5.42").Equal(starbucks.Amount))
				assert.Equal(t, transaction.TypePurchase, starbucks.Type)
				assert.Equal(t, "03/01 STARBUCKS #123 $5.42", starbucks.RawText)

				amazon := res.Transactions[1]
				assert.Equal(t, "AMAZON.COM *ABC123", amazon.Merchant)
				assert.True(t, decimal.RequireFromString("42.10").Equal(amazon.Amount))
				assert.Equal(t, transaction.TypePurchase, amazon.Type)
			},
		},
		{
			name: "ExtractError",
			setupMock: func(m *importer.MockExtractor) {
				m.EXPECT().
					Extract(gomock.Any(), "chase.pdf").
					Return(nil, errors.New("open chase.pdf: no such file or directory"))
			},
			check: func(t *testing.T, res statement.Result) {
				assert.False(t, res.Success)
				assert.Equal(t, generic.Institution, res.Institution)
				assert.Equal(t, statement.AccountUnknown, res.AccountType)
				assert.NotNil(t, res.Transactions)
				assert.Empty(t, res.Transactions)
				assert.Nil(t, res.AccountIdentifier)
				assert.Nil(t, res.StatementPeriod)
				require.NotNil(t, res.ErrorMessage)
				assert.Contains(t, *res.ErrorMessage, "no such file")
			},
		},
		{
			name: "NoText",
			setupMock: func(m *importer.MockExtractor) {
				m.EXPECT().
					Extract(gomock.Any(), "chase.pdf").
					Return(extract.NewDocument([]string{"", "  \n"}), nil)
			},
			check: func(t *testing.T, res statement.Result) {
				assert.True(t, res.Success)
				assert.Equal(t, generic.Institution, res.Institution)
				assert.NotNil(t, res.Transactions)
				assert.Empty(t, res.Transactions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := importer.NewMockExtractor(ctrl)
			tt.setupMock(m)

			res := newService(m).Parse(context.Background(), "chase.pdf")
			tt.check(t, res)
		})
	}
}

func TestService_ParseIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := importer.NewMockExtractor(ctrl)
	m.EXPECT().
		Extract(gomock.Any(), "amex.pdf").
		Return(extract.NewDocument([]string{amexStatement}), nil).
		Times(2)

	svc := newService(m)

	first := svc.Parse(context.Background(), "amex.pdf")
	second := svc.Parse(context.Background(), "amex.pdf")

	assert.Equal(t, first, second)
}

func TestService_ParseFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truist.txt")
	require.NoError(t, os.WriteFile(path, []byte(truistStatement), 0o600))

	res := newService(extract.NewPlain()).Parse(context.Background(), path)

	assert.True(t, res.Success)
	assert.Equal(t, truist.Institution, res.Institution)
	assert.Len(t, res.Transactions, 3)

	missing := newService(extract.NewPlain()).Parse(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.False(t, missing.Success)
	assert.NotNil(t, missing.ErrorMessage)
}

func TestService_DetectionPages(t *testing.T) {
	doc := extract.NewDocument([]string{
		"Member statement\n",
		"Account summary\n",
		"Truist Bank\n03/01 GROCERY HOUSE 4.00 96.00",
	})

	t.Run("brand past the detection window", func(t *testing.T) {
		res := newService(nil).ParseDocument(doc)

		// The fallback still scans every page, and labels the result from
		// the brand it finds there.
		assert.Equal(t, statement.AccountUnknown, res.AccountType)
		assert.Equal(t, "Truist", res.Institution)
		require.Len(t, res.Transactions, 1)
		assert.Equal(t, transaction.TypePurchase, res.Transactions[0].Type)
	})

	t.Run("wider window", func(t *testing.T) {
		res := newService(nil, importer.WithDetectionPages(3)).ParseDocument(doc)

		assert.Equal(t, statement.AccountChecking, res.AccountType)
		require.Len(t, res.Transactions, 1)
		assert.Equal(t, transaction.TypeWithdrawal, res.Transactions[0].Type)
		assert.True(t, decimal.RequireFromString("4.00").Equal(res.Transactions[0].Amount))
	})

	t.Run("blank pages count towards the window", func(t *testing.T) {
		scanned := extract.NewDocument([]string{"", "Member statement\n", "Truist Bank\n03/01 GROCERY HOUSE 4.00 96.00"})

		res := newService(nil).ParseDocument(scanned)

		assert.Equal(t, statement.AccountUnknown, res.AccountType)
		require.Len(t, res.Transactions, 1)
		assert.Equal(t, "GROCERY HOUSE", res.Transactions[0].Merchant)
	})

	t.Run("non-positive window is ignored", func(t *testing.T) {
		res := newService(nil, importer.WithDetectionPages(0)).ParseDocument(doc)

		assert.Equal(t, statement.AccountUnknown, res.AccountType)
	})
}

func TestService_FiltersDeniedLines(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		denied []string
	}{
		{"chase", chaseStatement, []string{"total", "balance", "payment due", "credit limit", "available", "minimum"}},
		{"amex", amexStatement, []string{"total", "balance", "payment", "credit limit", "available", "minimum", "fee"}},
		{"truist", truistStatement, []string{"balance", "total", "beginning", "ending", "summary", "statement"}},
		{"generic", genericStatement, []string{"total", "balance", "summary", "fee", "interest", "minimum"}},
	}

	svc := newService(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.ParseDocument(extract.NewDocument([]string{tt.text}))
			require.NotEmpty(t, res.Transactions)

			for _, tx := range res.Transactions {
				merchant := strings.ToLower(tx.Merchant)
				for _, word := range tt.denied {
					assert.NotContains(t, merchant, word)
				}

				assert.GreaterOrEqual(t, len([]rune(tx.Merchant)), scan.MinMerchantLen)
			}
		})
	}
}

func TestService_SignsMatchTypes(t *testing.T) {
	svc := newService(nil)

	for _, text := range []string{chaseStatement, amexStatement, truistStatement, genericStatement} {
		res := svc.ParseDocument(extract.NewDocument([]string{text}))

		for _, tx := range res.Transactions {
			assert.True(t, tx.Type.Valid(), tx.RawText)
			assert.True(t, tx.SignConsistent(), "%s: %s %s", tx.RawText, tx.Type, tx.Amount)
		}
	}
}

func TestService_StrictAmounts(t *testing.T) {
	sel := importer.DefaultSelector(
		scan.WithAmountPolicy(normalize.RejectUnparsableAmount),
		scan.WithYearPolicy(normalize.FixedYear(2022)),
	)
	svc := importer.NewService(nil, sel, importer.WithLogger(discard()))

	res := svc.ParseDocument(extract.NewDocument([]string{"Truist\n04/02 ATM WITHDRAWAL $60.00\n"}))

	require.Len(t, res.Transactions, 1)
	assert.Equal(t, 2022, res.Transactions[0].Date.Year())
	assert.True(t, decimal.RequireFromString("60.00").Equal(res.Transactions[0].Amount))
}

func TestService_ConcurrentUse(t *testing.T) {
	svc := newService(nil)
	texts := []string{chaseStatement, amexStatement, truistStatement, genericStatement}

	want := make([]statement.Result, len(texts))
	for i, text := range texts {
		want[i] = svc.ParseDocument(extract.NewDocument([]string{text}))
	}

	const rounds = 20

	got := make([]statement.Result, len(texts)*rounds)

	var wg sync.WaitGroup

	for i := range got {
		i := i
		wg.Add(1)

		go func() {
			defer wg.Done()
			got[i] = svc.ParseDocument(extract.NewDocument([]string{texts[i%len(texts)]}))
		}()
	}

	wg.Wait()

	for i, res := range got {
		assert.Equal(t, want[i%len(texts)], res)
	}
}
