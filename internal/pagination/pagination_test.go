package pagination

import "testing"

func TestSlice(t *testing.T) {
	items := make([]int, 0, 45)
	for i := 0; i < 45; i++ {
		items = append(items, i)
	}

	t.Run("defaults", func(t *testing.T) {
		resp := Slice(items, PageRequest{})
		if resp.Page != 1 || resp.PageSize != 20 {
			t.Errorf("expected defaults 1/20, got %d/%d", resp.Page, resp.PageSize)
		}
		if len(resp.Data) != 20 {
			t.Errorf("expected 20 items, got %d", len(resp.Data))
		}
		if resp.TotalItems != 45 || resp.TotalPages != 3 {
			t.Errorf("expected 45 items over 3 pages, got %d over %d", resp.TotalItems, resp.TotalPages)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 3, PageSize: 20})
		if len(resp.Data) != 5 {
			t.Errorf("expected 5 items on last page, got %d", len(resp.Data))
		}
		if resp.Data[0] != 40 {
			t.Errorf("expected first item 40, got %d", resp.Data[0])
		}
	})

	t.Run("page_beyond_end", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 10, PageSize: 20})
		if len(resp.Data) != 0 {
			t.Errorf("expected empty page, got %d items", len(resp.Data))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		resp := Slice([]int(nil), PageRequest{})
		if resp.Data == nil {
			t.Error("expected non-nil empty slice in response")
		}
		if resp.TotalItems != 0 {
			t.Errorf("expected 0 total items, got %d", resp.TotalItems)
		}
	})
}
