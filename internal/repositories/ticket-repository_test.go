package repositories

import (
	"testing"

	"helpdesk-system/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery_NoFilters(t *testing.T) {
	sql, args, err := buildListQuery(dto.TicketFilterDTO{}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM tickets")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListQuery_AllMeansNoFilter(t *testing.T) {
	sql, args, err := buildListQuery(dto.TicketFilterDTO{
		Status:   "all",
		Type:     "all",
		Priority: "all",
	}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListQuery_StatusAndType(t *testing.T) {
	sql, args, err := buildListQuery(dto.TicketFilterDTO{
		Status: "nouveau",
		Type:   "panne",
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "status = $1")
	assert.Contains(t, sql, "type = $2")
	assert.Equal(t, []interface{}{"nouveau", "panne"}, args)
}

func TestBuildListQuery_Search(t *testing.T) {
	sql, args, err := buildListQuery(dto.TicketFilterDTO{Search: "imprimante"}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "title ILIKE $1")
	assert.Contains(t, sql, "description ILIKE $2")
	assert.Equal(t, []interface{}{"%imprimante%", "%imprimante%"}, args)
}
