package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func adminLine(designation string, amount int64) *AdminLine {
	return &AdminLine{Designation: designation, Amount: decimal.NewFromInt(amount)}
}

func TestValidateAdminLines(t *testing.T) {
	cases := []struct {
		name   string
		lines  AdminLineList
		wantOK bool
	}{
		{"empty is fine", AdminLineList{}, true},
		{"all three designations", AdminLineList{
			adminLine("Owner A", 100), adminLine("Owner B", 50), adminLine("Salaries", 900),
		}, true},
		{"order does not matter", AdminLineList{
			adminLine("Salaries", 900), adminLine("Owner A", 100), adminLine("Owner B", 50),
		}, true},
		{"too few entries", AdminLineList{
			adminLine("Owner A", 100), adminLine("Owner B", 50),
		}, false},
		{"unknown designation", AdminLineList{
			adminLine("Owner A", 100), adminLine("Owner B", 50), adminLine("Owner C", 10),
		}, false},
		{"nil entry", AdminLineList{
			adminLine("Owner A", 100), nil, adminLine("Salaries", 900),
		}, false},
		{"repeated designation", AdminLineList{
			adminLine("Owner A", 100), adminLine("Owner A", 50), adminLine("Owner A", 10),
		}, false},
		{"one duplicate crowds out another", AdminLineList{
			adminLine("Owner A", 100), adminLine("Owner B", 50), adminLine("Owner B", 10),
		}, false},
	}
	for _, tc := range cases {
		err := validateAdminLines(tc.lines)
		if tc.wantOK && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.wantOK && err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
