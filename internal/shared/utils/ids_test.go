package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodDelete, "/?"+rawQuery, nil)
	return c
}

func TestFlexibleID_Unmarshal(t *testing.T) {
	var body struct {
		IDs []FlexibleID `json:"ids"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"ids":[1,"2"," 3 "]}`), &body))
	assert.Equal(t, []uint{1, 2, 3}, FlexibleIDs(body.IDs))

	assert.Error(t, json.Unmarshal([]byte(`{"ids":["abc"]}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"ids":[0]}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"ids":[null]}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"ids":[-4]}`), &body))
}

func TestParseIDQuery(t *testing.T) {
	t.Run("repeated and bracketed keys", func(t *testing.T) {
		c := newQueryContext("user_ids=1&user_ids[]=2&user_ids=3,4")
		ids, err := ParseIDQuery(c, "user_ids")
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{1, 2, 3, 4}, ids)
	})

	t.Run("missing key yields empty list", func(t *testing.T) {
		ids, err := ParseIDQuery(newQueryContext(""), "product_ids")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseIDQuery(newQueryContext("product_ids=x"), "product_ids")
		assert.Error(t, err)
	})
}

func TestParseIDParam(t *testing.T) {
	c := newQueryContext("")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	_, err = ParseIDParam(c, "id")
	assert.Error(t, err)
}
