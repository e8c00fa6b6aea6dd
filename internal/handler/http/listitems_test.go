// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-list-keeper/internal/service"
	"github.com/MKhiriev/go-list-keeper/models"
)

func TestAddListitem(t *testing.T) {
	a := newAPIHarness(t)

	a.lists.EXPECT().AddListitem(gomock.Any(), "l1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, item *models.Listitem) service.Result {
			assert.Equal(t, "Milk", item.Item())
			assert.Equal(t, "2 litres", item.Note())
			assert.True(t, item.Locked())
			item.BindList("l1")
			item.BindID("i1")
			return service.ResultSuccess
		})

	rr := a.do(http.MethodPost, "/api/lists/l1/items", `{"item":"Milk","note":"2 litres","locked":true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var rec models.ListitemRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, "i1", rec.ID)
	assert.Equal(t, "l1", rec.ListID)
	assert.Equal(t, "Milk", rec.Item)
}

func TestAddListitem_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no text", `{"note":"x"}`},
		{"blank text", `{"item":"  "}`},
		{"broken json", `{"item"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAPIHarness(t)
			rr := a.do(http.MethodPost, "/api/lists/l1/items", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestAddListitem_UnknownList(t *testing.T) {
	a := newAPIHarness(t)
	a.lists.EXPECT().AddListitem(gomock.Any(), "nope", gomock.Any()).Return(service.ResultFailure)

	rr := a.do(http.MethodPost, "/api/lists/nope/items", `{"item":"Milk"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUpdateListitem(t *testing.T) {
	a := newAPIHarness(t)

	list := testList("l1", "Groceries", "Milk", "Bread")
	a.lists.EXPECT().GetList(gomock.Any(), "l1").Return(list, nil)
	a.lists.EXPECT().StoreListitem(gomock.Any(), gomock.Any(), false).DoAndReturn(
		func(_ context.Context, item *models.Listitem, _ bool) service.Result {
			assert.Equal(t, "l1-item-Bread", item.ID())
			assert.True(t, item.Hidden())
			return service.ResultSuccess
		})

	rr := a.do(http.MethodPut, "/api/lists/l1/items/l1-item-Bread", `{"hidden":true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var rec models.ListitemRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.True(t, rec.Hidden)
}

func TestUpdateListitem_UnknownItem(t *testing.T) {
	a := newAPIHarness(t)
	a.lists.EXPECT().GetList(gomock.Any(), "l1").Return(testList("l1", "Groceries", "Milk"), nil)

	rr := a.do(http.MethodPut, "/api/lists/l1/items/missing", `{"hidden":true}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteListitem(t *testing.T) {
	a := newAPIHarness(t)
	a.lists.EXPECT().DeleteListitem(gomock.Any(), "l1", "i1", false).Return(service.ResultNone)
	a.lists.EXPECT().DeleteListitem(gomock.Any(), "l1", "i1", true).Return(service.ResultSuccess)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/lists/l1/items/i1", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodDelete, "/api/lists/l1/items/i1?force=true", "").Code)
}

func TestDeleteListitems(t *testing.T) {
	a := newAPIHarness(t)
	a.lists.EXPECT().DeleteListitems(gomock.Any(), "l1", []string{"i1", "i2"}, false).
		Return(service.BatchResult{Succeeded: 1, Failed: 1})

	rr := a.do(http.MethodPost, "/api/lists/l1/items/delete", `{"ids":["i1","i2"]}`, "X-Confirm", "yes")
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp models.OperationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
}

func TestReorderListitems(t *testing.T) {
	a := newAPIHarness(t)
	a.lists.EXPECT().ReorderListitems(gomock.Any(), "l1", []string{"i2", "i1"}).Return(service.ResultFailure)

	rr := a.do(http.MethodPost, "/api/lists/l1/items/reorder", `{"ids":["i2","i1"]}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
