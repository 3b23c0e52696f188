package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"oficina_api/internal/domain/entities"
	mock_interfaces "oficina_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type financeFixture struct {
	payables    *mock_interfaces.MockIPayableRepository
	receivables *mock_interfaces.MockIReceivableRepository
	payments    *mock_interfaces.MockIPaymentRepository
	gateway     *mock_interfaces.MockIPaymentGateway
	uc          *FinanceUseCase
}

func newFinanceFixture(t *testing.T) *financeFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &financeFixture{
		payables:    mock_interfaces.NewMockIPayableRepository(ctrl),
		receivables: mock_interfaces.NewMockIReceivableRepository(ctrl),
		payments:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewFinanceUseCase(f.payables, f.receivables, f.payments, f.gateway)
	return f
}

func TestFinanceUseCase_CreatePayable(t *testing.T) {
	t.Run("persists a pending entry", func(t *testing.T) {
		f := newFinanceFixture(t)

		f.payables.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payable{})).DoAndReturn(
			func(_ context.Context, p entities.Payable) (entities.Payable, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.Status != entities.FinanceStatusPendente {
					t.Fatalf("expected Pendente, got %s", p.Status)
				}
				return p, nil
			},
		)

		_, err := f.uc.CreatePayable(context.Background(), CreatePayableInput{
			Description: "Aluguel do galpão",
			Category:    "Instalações",
			Amount:      3500,
			DueDate:     "2026-09-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		f := newFinanceFixture(t)

		if _, err := f.uc.CreatePayable(context.Background(), CreatePayableInput{Amount: 10, DueDate: "2026-09-10"}); !errors.Is(err, ErrInvalidFinanceDescription) {
			t.Fatalf("expected ErrInvalidFinanceDescription, got %v", err)
		}
		if _, err := f.uc.CreatePayable(context.Background(), CreatePayableInput{Description: "x", DueDate: "2026-09-10"}); !errors.Is(err, ErrInvalidFinanceAmount) {
			t.Fatalf("expected ErrInvalidFinanceAmount, got %v", err)
		}
		if _, err := f.uc.CreatePayable(context.Background(), CreatePayableInput{Description: "x", Amount: 10, DueDate: "10/09/2026"}); !errors.Is(err, ErrInvalidFinanceDueDate) {
			t.Fatalf("expected ErrInvalidFinanceDueDate, got %v", err)
		}
	})
}

func TestFinanceUseCase_ListReceivables_OverdueDerivation(t *testing.T) {
	f := newFinanceFixture(t)

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(entities.DateLayout)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(entities.DateLayout)

	f.receivables.EXPECT().List(gomock.Any()).Return([]entities.Receivable{
		{ID: "r1", Description: "OS 1", DueDate: yesterday, Status: entities.FinanceStatusPendente},
		{ID: "r2", Description: "OS 2", DueDate: tomorrow, Status: entities.FinanceStatusPendente},
		{ID: "r3", Description: "OS 3", DueDate: yesterday, Status: entities.FinanceStatusPago},
	}, nil)

	out, err := f.uc.ListReceivables(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	if out[0].Status != entities.FinanceStatusAtrasado {
		t.Fatalf("overdue pending entry must read Atrasado, got %s", out[0].Status)
	}
	if out[1].Status != entities.FinanceStatusPendente {
		t.Fatalf("future entry stays Pendente, got %s", out[1].Status)
	}
	if out[2].Status != entities.FinanceStatusPago {
		t.Fatalf("paid entry is never overdue, got %s", out[2].Status)
	}
}

func TestFinanceUseCase_MarkPayablePaid(t *testing.T) {
	t.Run("transitions to Pago", func(t *testing.T) {
		f := newFinanceFixture(t)
		f.payables.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Payable{ID: "p1", Status: entities.FinanceStatusPendente}, nil)
		f.payables.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.FinanceStatusPago).
			Return(entities.Payable{ID: "p1", Status: entities.FinanceStatusPago}, nil)

		out, err := f.uc.MarkPayablePaid(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.FinanceStatusPago {
			t.Fatalf("expected Pago, got %s", out.Status)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		f := newFinanceFixture(t)
		f.payables.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Payable{ID: "p1", Status: entities.FinanceStatusPago}, nil)

		if _, err := f.uc.MarkPayablePaid(context.Background(), "p1"); !errors.Is(err, ErrEntryAlreadyPaid) {
			t.Fatalf("expected ErrEntryAlreadyPaid, got %v", err)
		}
	})
}

func TestFinanceUseCase_SettleReceivable(t *testing.T) {
	receivable := entities.Receivable{ID: "r1", Description: "OS 1", Amount: 114, Status: entities.FinanceStatusPendente}

	t.Run("charges the gateway and marks the entry paid", func(t *testing.T) {
		f := newFinanceFixture(t)

		f.receivables.EXPECT().GetByID(gomock.Any(), "r1").Return(receivable, nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("payload must stay valid JSON: %v", err)
				}
				// The stored receivable drives the charged amount.
				if req["transaction_amount"] != 114.0 {
					t.Fatalf("expected amount from receivable, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "r1" {
					t.Fatalf("expected receivable linkage, got %v", req["external_reference"])
				}
				if req["payment_method_id"] != "pix" {
					t.Fatalf("caller fields must survive, got %v", req["payment_method_id"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			},
		)
		f.payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "mp-123" || p.ReceivableID != "r1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("expected aprovado, got %s", p.Status)
				}
				return p, nil
			},
		)
		f.receivables.EXPECT().UpdateStatus(gomock.Any(), "r1", entities.FinanceStatusPago).
			Return(entities.Receivable{ID: "r1", Status: entities.FinanceStatusPago}, nil)

		payment, err := f.uc.SettleReceivable(context.Background(), "r1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.ID != "mp-123" {
			t.Fatalf("unexpected payment: %+v", payment)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		f := newFinanceFixture(t)
		f.receivables.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Receivable{ID: "r1", Status: entities.FinanceStatusPago}, nil)

		_, err := f.uc.SettleReceivable(context.Background(), "r1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrEntryAlreadyPaid) {
			t.Fatalf("expected ErrEntryAlreadyPaid, got %v", err)
		}
	})

	t.Run("invalid payload without mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		f := newFinanceFixture(t)

		_, err := f.uc.SettleReceivable(context.Background(), "r1", json.RawMessage(`{not json`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("empty payload defaults under mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		f := newFinanceFixture(t)

		f.receivables.EXPECT().GetByID(gomock.Any(), "r1").Return(receivable, nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mock-1", "approved", json.RawMessage(`{"id":"mock-1"}`), nil)
		f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		f.receivables.EXPECT().UpdateStatus(gomock.Any(), "r1", entities.FinanceStatusPago).
			Return(entities.Receivable{ID: "r1", Status: entities.FinanceStatusPago}, nil)

		if _, err := f.uc.SettleReceivable(context.Background(), "r1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway error classification", func(t *testing.T) {
		cases := []struct {
			name    string
			gateway error
			want    error
		}{
			{"bad request", errors.New(`mercadopago: {"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
			{"unauthorized", errors.New(`mercadopago: {"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFinanceFixture(t)
				f.receivables.EXPECT().GetByID(gomock.Any(), "r1").Return(receivable, nil)
				f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					Return("", "", nil, tc.gateway)

				if _, err := f.uc.SettleReceivable(context.Background(), "r1", json.RawMessage(`{}`)); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestFinanceUseCase_CashFlowSummary(t *testing.T) {
	f := newFinanceFixture(t)

	f.receivables.EXPECT().List(gomock.Any()).Return([]entities.Receivable{
		{ID: "r1", Amount: 100, DueDate: "2026-08-10", Status: entities.FinanceStatusPago},
		{ID: "r2", Amount: 50.25, DueDate: "2026-08-20", Status: entities.FinanceStatusPago},
		{ID: "r3", Amount: 999, DueDate: "2026-08-25", Status: entities.FinanceStatusPendente},
	}, nil)
	f.payables.EXPECT().List(gomock.Any()).Return([]entities.Payable{
		{ID: "p1", Amount: 30, DueDate: "2026-08-05", Status: entities.FinanceStatusPago},
		{ID: "p2", Amount: 70, DueDate: "2026-09-05", Status: entities.FinanceStatusPago},
	}, nil)

	out, err := f.uc.CashFlowSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 months, got %+v", out)
	}
	aug := out[0]
	if aug.Month != "2026-08" || aug.Inflow != 150.25 || aug.Outflow != 30.0 || aug.Balance != 120.25 {
		t.Fatalf("unexpected august entry: %+v", aug)
	}
	sep := out[1]
	if sep.Month != "2026-09" || sep.Inflow != 0.0 || sep.Outflow != 70.0 || sep.Balance != -70.0 {
		t.Fatalf("unexpected september entry: %+v", sep)
	}
}
