package sheet

import "testing"

func TestDetectPlatform(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		headers []string
		want    Platform
	}{
		{
			name:    "shopee",
			headers: []string{"Order ID", "Tracking Number*", "Parent SKU Reference No.", "Username (Buyer)"},
			want:    PlatformShopee,
		},
		{
			name:    "lazada",
			headers: []string{"orderNumber", "trackingCode", "sellerSku"},
			want:    PlatformLazada,
		},
		{
			name:    "tiktok",
			headers: []string{"Order ID", "Tracking ID", "Shipping Provider Name"},
			want:    PlatformTikTok,
		},
		{
			name:    "unknown",
			headers: []string{"Order ID", "Tracking Number", "Courier"},
			want:    PlatformUnknown,
		},
		{
			// TikTok 标志列优先于可能重叠的 Shopee 兜底列
			name:    "tiktok wins over shopee markers",
			headers: []string{"Username (Buyer)", "Tracking ID"},
			want:    PlatformTikTok,
		},
	}

	for _, tc := range cases {
		if got := DetectPlatform(tc.headers); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterDescriptionRow_DropsTikTokFirstRow(t *testing.T) {
	t.Parallel()

	cols := Columns{
		OrderID:         "Order ID",
		TrackingNumber:  "Tracking ID",
		ShippingCourier: "Shipping Provider Name",
	}
	rows := []map[string]string{
		{
			"Order ID":               "The unique ID of the order on the platform.",
			"Tracking ID":            "The order's tracking number.",
			"Shipping Provider Name": "The shipping provider of this parcel.",
		},
		{
			"Order ID":               "576819123456789",
			"Tracking ID":            "PH250112345678A",
			"Shipping Provider Name": "J&T Express",
		},
	}

	got := FilterDescriptionRow(rows, PlatformTikTok, cols)
	if len(got) != 1 {
		t.Fatalf("len=%d, want 1", len(got))
	}
	if got[0]["Order ID"] != "576819123456789" {
		t.Fatalf("kept wrong row: %v", got[0])
	}
}

func TestFilterDescriptionRow_KeepsRealData(t *testing.T) {
	t.Parallel()

	cols := Columns{
		OrderID:         "Order ID",
		TrackingNumber:  "Tracking ID",
		ShippingCourier: "Shipping Provider Name",
	}
	rows := []map[string]string{
		{
			"Order ID":               "576819123456789",
			"Tracking ID":            "PH250112345678A",
			"Shipping Provider Name": "J&T Express",
		},
	}

	if got := FilterDescriptionRow(rows, PlatformTikTok, cols); len(got) != 1 {
		t.Fatalf("real data row dropped")
	}
}

func TestFilterDescriptionRow_OnlyTikTok(t *testing.T) {
	t.Parallel()

	cols := Columns{OrderID: "Order ID", TrackingNumber: "Tracking Number", ShippingCourier: "Courier"}
	rows := []map[string]string{
		{"Order ID": "This row looks like a description."},
	}

	// 非 TikTok 平台不做首行过滤
	if got := FilterDescriptionRow(rows, PlatformShopee, cols); len(got) != 1 {
		t.Fatalf("non-tiktok rows must pass through")
	}
}

func TestIsLeakedDescription(t *testing.T) {
	t.Parallel()

	if !IsLeakedDescription("The order's tracking number.") {
		t.Fatalf("description text not detected")
	}
	if IsLeakedDescription("PH250112345678A") {
		t.Fatalf("real tracking number flagged as description")
	}
}
