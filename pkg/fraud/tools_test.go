package fraud

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFraudCallFlow(t *testing.T) {
	svc, st := newTestService(t, DefaultCases())
	ts := Tools(svc)

	load, ok := ts.Handler("load_fraud_case")
	require.True(t, ok)
	out, err := load(context.Background(), json.RawMessage(`{"user_name":"priya sharma"}`))
	require.NoError(t, err)
	assert.Contains(t, out, "CASE-1001")
	assert.Contains(t, out, "Security question:")

	verify, ok := ts.Handler("verify_customer")
	require.True(t, ok)

	out, err = verify(context.Background(), json.RawMessage(`{"user_answer":"wrong"}`))
	require.NoError(t, err)
	assert.Equal(t, "failed", out)

	out, err = verify(context.Background(), json.RawMessage(`{"user_answer":"st. xavier's"}`))
	require.NoError(t, err)
	assert.Contains(t, out, "Verified!")
	assert.Contains(t, out, "Card ending: 4421")

	update, ok := ts.Handler("update_case_status")
	require.True(t, ok)
	out, err = update(context.Background(), json.RawMessage(`{"status":"confirmed_safe","outcome":"Customer recognized the purchase"}`))
	require.NoError(t, err)
	assert.Equal(t, "Case updated to confirmed_safe.", out)

	var cases []Case
	require.NoError(t, st.LoadCollection(CasesCollection, &cases))
	assert.Equal(t, StatusConfirmedSafe, cases[0].Status)
	assert.NotEmpty(t, cases[0].VerificationTimestamp)
}

func TestFraudToolsWithoutLoadedCase(t *testing.T) {
	svc, _ := newTestService(t, DefaultCases())
	ts := Tools(svc)

	verify, _ := ts.Handler("verify_customer")
	_, err := verify(context.Background(), json.RawMessage(`{"user_answer":"x"}`))
	require.Error(t, err)

	update, _ := ts.Handler("update_case_status")
	_, err = update(context.Background(), json.RawMessage(`{"status":"confirmed_safe","outcome":"x"}`))
	require.Error(t, err)
}
