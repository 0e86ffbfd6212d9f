package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_DecodesIDOrObject(t *testing.T) {
	var p Prospect
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "p1",
		"teamLead": "tl1",
		"salesExecutive": {"_id": "se1", "name": "Ravi", "email": "ravi@example.com"}
	}`), &p))

	require.NotNil(t, p.TeamLead)
	assert.Equal(t, "tl1", p.TeamLead.ID)
	assert.Equal(t, "N/A", RefName(p.TeamLead))
	assert.Equal(t, "Ravi", RefName(p.SalesExecutive))
	assert.Equal(t, "se1", RefID(p.SalesExecutive))
}

func TestRef_NullIsNil(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"u1","manager":null}`), &u))
	assert.Nil(t, u.Manager)
	assert.Equal(t, "", RefID(u.Manager))
}

func TestTime_Tolerant(t *testing.T) {
	var p Prospect
	require.NoError(t, json.Unmarshal([]byte(`{"reminderDate":"","lastUpdate":"2024-05-02T10:30:00.000Z","createdAt":"2024-05-01"}`), &p))

	assert.True(t, p.ReminderDate.IsZero())
	assert.Equal(t, "N/A", p.ReminderDate.Date())
	assert.Equal(t, "2024-05-02", p.LastUpdate.Date())
	assert.Equal(t, "10:30", p.LastUpdate.Clock())
	assert.Equal(t, time.May, p.CreatedAt.Month())

	require.Error(t, json.Unmarshal([]byte(`{"reminderDate":"tomorrow"}`), &p))
}

func TestTime_ZeroMarshalsAsNull(t *testing.T) {
	b, err := json.Marshal(struct {
		T Time `json:"t"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":null}`, string(b))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Team Lead", RoleTeamLead.Label())
	assert.Equal(t, "Sales Executive", RoleSalesExecutive.Label())
	assert.Equal(t, "Internal Prospects", TransferLog{TransferType: "internal_prospects"}.TypeLabel())
}
