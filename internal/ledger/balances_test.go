package ledger

import (
	"errors"
	"testing"

	"github.com/divvyhq/divvy/internal/money"
)

func TestAggregateBalances(t *testing.T) {
	tests := []struct {
		name        string
		members     []string
		expenses    []Expense
		settlements []SettlementRecord
		wantErr     error
		want        []Balance
	}{
		{
			name:    "three-way even split",
			members: []string{"alice", "bob", "carol"},
			expenses: []Expense{
				{PayerID: "alice", Amount: 3000, SplitBetween: []string{"alice", "bob", "carol"}},
			},
			want: []Balance{
				{MemberID: "alice", Net: 2000},
				{MemberID: "bob", Net: -1000},
				{MemberID: "carol", Net: -1000},
			},
		},
		{
			name:    "settlement reduces balances",
			members: []string{"alice", "bob", "carol"},
			expenses: []Expense{
				{PayerID: "alice", Amount: 3000, SplitBetween: []string{"alice", "bob", "carol"}},
			},
			settlements: []SettlementRecord{
				{FromUserID: "bob", ToUserID: "alice", Amount: 1000},
			},
			want: []Balance{
				{MemberID: "alice", Net: 1000},
				{MemberID: "bob", Net: 0},
				{MemberID: "carol", Net: -1000},
			},
		},
		{
			name:    "uneven split assigns remainder cents to earliest beneficiaries",
			members: []string{"alice", "bob", "carol"},
			expenses: []Expense{
				// 10.00 / 3: shares 3.34, 3.33, 3.33 in split order.
				{PayerID: "alice", Amount: 1000, SplitBetween: []string{"alice", "bob", "carol"}},
			},
			want: []Balance{
				{MemberID: "alice", Net: 666},
				{MemberID: "bob", Net: -333},
				{MemberID: "carol", Net: -333},
			},
		},
		{
			name:    "payer not a beneficiary",
			members: []string{"alice", "bob"},
			expenses: []Expense{
				{PayerID: "alice", Amount: 500, SplitBetween: []string{"bob"}},
			},
			want: []Balance{
				{MemberID: "alice", Net: 500},
				{MemberID: "bob", Net: -500},
			},
		},
		{
			name:    "no activity yields zero balances",
			members: []string{"alice", "bob"},
			want: []Balance{
				{MemberID: "alice", Net: 0},
				{MemberID: "bob", Net: 0},
			},
		},
		{
			name:    "empty roster",
			members: nil,
			wantErr: ErrEmptyRoster,
		},
		{
			name:    "duplicate roster entry",
			members: []string{"alice", "alice"},
			wantErr: ErrDuplicateMember,
		},
		{
			name:    "unknown payer",
			members: []string{"alice", "bob"},
			expenses: []Expense{
				{PayerID: "mallory", Amount: 100, SplitBetween: []string{"alice"}},
			},
			wantErr: ErrUnknownMember,
		},
		{
			name:    "unknown beneficiary",
			members: []string{"alice", "bob"},
			expenses: []Expense{
				{PayerID: "alice", Amount: 100, SplitBetween: []string{"mallory"}},
			},
			wantErr: ErrUnknownMember,
		},
		{
			name:    "non-positive expense amount",
			members: []string{"alice", "bob"},
			expenses: []Expense{
				{PayerID: "alice", Amount: 0, SplitBetween: []string{"bob"}},
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "empty split",
			members: []string{"alice", "bob"},
			expenses: []Expense{
				{PayerID: "alice", Amount: 100},
			},
			wantErr: ErrEmptySplit,
		},
		{
			name:    "settlement to self",
			members: []string{"alice", "bob"},
			settlements: []SettlementRecord{
				{FromUserID: "alice", ToUserID: "alice", Amount: 100},
			},
			wantErr: ErrSelfSettlement,
		},
		{
			name:    "settlement with unknown member",
			members: []string{"alice", "bob"},
			settlements: []SettlementRecord{
				{FromUserID: "alice", ToUserID: "mallory", Amount: 100},
			},
			wantErr: ErrUnknownMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AggregateBalances(tt.members, tt.expenses, tt.settlements)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AggregateBalances() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AggregateBalances() failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d balances, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("balance[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAggregateBalancesZeroSum(t *testing.T) {
	members := []string{"alice", "bob", "carol", "dave", "erin"}
	expenses := []Expense{
		{PayerID: "alice", Amount: 1000, SplitBetween: []string{"alice", "bob", "carol"}},
		{PayerID: "bob", Amount: 4999, SplitBetween: []string{"alice", "bob", "carol", "dave", "erin"}},
		{PayerID: "carol", Amount: 7, SplitBetween: []string{"dave", "erin"}},
		{PayerID: "erin", Amount: 123456, SplitBetween: []string{"alice", "erin"}},
	}
	settlements := []SettlementRecord{
		{FromUserID: "bob", ToUserID: "alice", Amount: 250},
		{FromUserID: "dave", ToUserID: "carol", Amount: 99},
	}

	balances, err := AggregateBalances(members, expenses, settlements)
	if err != nil {
		t.Fatalf("AggregateBalances() failed: %v", err)
	}

	var sum money.Cents
	for _, b := range balances {
		sum += b.Net
	}
	if sum != 0 {
		t.Errorf("balances sum to %d cents, want exactly 0", sum)
	}
}

// Shares of an uneven amount must total the amount exactly, never drift.
func TestAggregateBalancesExactShares(t *testing.T) {
	members := []string{"payer", "a", "b", "c"}
	balances, err := AggregateBalances(members, []Expense{
		{PayerID: "payer", Amount: 1001, SplitBetween: []string{"a", "b", "c"}},
	}, nil)
	if err != nil {
		t.Fatalf("AggregateBalances() failed: %v", err)
	}

	// 10.01 / 3 -> 3.34, 3.34, 3.33
	want := map[string]money.Cents{"payer": 1001, "a": -334, "b": -334, "c": -333}
	for _, b := range balances {
		if b.Net != want[b.MemberID] {
			t.Errorf("%s net = %d, want %d", b.MemberID, b.Net, want[b.MemberID])
		}
	}
}
