package recon

import "testing"

func TestFormatOrderCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		orderCode string
		parentSku string
		product   string
		variation string
		quantity  int
		want      string
	}{
		{
			name: "no code means no annotation",
			want: "",
		},
		{
			name:      "basic",
			orderCode: "OC1",
			parentSku: "ABC",
			quantity:  2,
			want:      "OC1 - 2",
		},
		{
			name:      "pffb-2b special case",
			orderCode: "OC1",
			parentSku: "PFFB-2B",
			quantity:  1,
			want:      "OC1 (PFFB-2B) - 1",
		},
		{
			name:      "powder whole word",
			orderCode: "OC1",
			parentSku: "ABC",
			product:   "Whey Powder 1kg",
			quantity:  3,
			want:      "OC1 Powder - 3",
		},
		{
			// power 只是 powder 的前缀，不能整词命中
			name:      "powerhouse is not powder",
			orderCode: "OC1",
			parentSku: "ABC",
			product:   "Protein Powerhouse",
			variation: "Vanilla",
			quantity:  1,
			want:      "OC1 - Vanilla x 1",
		},
		{
			name:      "variation format",
			orderCode: "OC1",
			parentSku: "ABC",
			variation: "Chocolate 500g",
			quantity:  2,
			want:      "OC1 - Chocolate 500g x 2",
		},
		{
			// 特例优先级：PFFB-2B 赢过 powder 和规格
			name:      "pffb-2b wins over powder",
			orderCode: "OC1",
			parentSku: "PFFB-2B",
			product:   "Magic Powder",
			variation: "Small",
			quantity:  2,
			want:      "OC1 (PFFB-2B) - 2",
		},
		{
			name:      "quantity floor",
			orderCode: "OC1",
			parentSku: "ABC",
			quantity:  0,
			want:      "OC1 - 1",
		},
	}

	for _, tc := range cases {
		got := FormatOrderCode(tc.orderCode, tc.parentSku, tc.product, tc.variation, tc.quantity)
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
