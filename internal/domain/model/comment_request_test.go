// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/econsultation/econsultation-service/pkg/errors"
)

func TestRequestStateTransitions(t *testing.T) {
	tests := []struct {
		from RequestState
		to   RequestState
		want bool
	}{
		{RequestStatePending, RequestStateAccepted, true},
		{RequestStatePending, RequestStateRejected, true},
		{RequestStatePending, RequestStatePending, false},
		{RequestStateAccepted, RequestStateAccepted, false},
		{RequestStateAccepted, RequestStateRejected, false},
		{RequestStateAccepted, RequestStatePending, false},
		{RequestStateRejected, RequestStateAccepted, false},
		{RequestStateRejected, RequestStatePending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.False(t, RequestStatePending.IsTerminal())
	assert.True(t, RequestStateAccepted.IsTerminal())
	assert.True(t, RequestStateRejected.IsTerminal())
}

func TestParseRequestState(t *testing.T) {
	tests := []struct {
		raw     string
		want    RequestState
		wantErr bool
	}{
		{raw: "", want: RequestStatePending},
		{raw: "pending", want: RequestStatePending},
		{raw: " Accepted ", want: RequestStateAccepted},
		{raw: "approved", want: RequestStateAccepted},
		{raw: "REJECTED", want: RequestStateRejected},
		{raw: "withdrawn", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseRequestState(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommentRequestTransition(t *testing.T) {
	cr := &CommentRequest{ID: "7", DraftID: "42", InstitutionID: "A", State: RequestStatePending}

	require.NoError(t, cr.Transition(RequestStateRejected))
	assert.Equal(t, RequestStateRejected, cr.State)
	assert.False(t, cr.UpdatedAt.IsZero())

	err := cr.Transition(RequestStateAccepted)
	require.Error(t, err)
	var invalid errs.InvalidState
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, RequestStateRejected, cr.State, "state must not change on a refused transition")
}

func TestCommentRequestNormalize(t *testing.T) {
	cr := &CommentRequest{ID: "1", Email: "reviewer@moj.gov.et"}
	cr.Normalize()

	assert.Equal(t, RequestStatePending, cr.State)
	assert.True(t, cr.IsPersonal)
	assert.Equal(t, "reviewer@moj.gov.et", cr.Target())

	inst := &CommentRequest{ID: "2", InstitutionID: "A", State: RequestStateAccepted}
	inst.Normalize()
	assert.Equal(t, RequestStateAccepted, inst.State)
	assert.Equal(t, "A", inst.Target())
}

func TestInstitutionInvitationValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      InstitutionInvitation
		wantIDs []string
		wantErr bool
	}{
		{
			name:    "two institutions",
			in:      InstitutionInvitation{DraftID: "42", InstitutionIDs: []string{"A", "B"}, Remark: "please review"},
			wantIDs: []string{"A", "B"},
		},
		{
			name:    "duplicates collapse",
			in:      InstitutionInvitation{DraftID: "42", InstitutionIDs: []string{"A", "B", "A", " "}},
			wantIDs: []string{"A", "B"},
		},
		{
			name:    "no institutions",
			in:      InstitutionInvitation{DraftID: "42"},
			wantErr: true,
		},
		{
			name:    "blank institutions only",
			in:      InstitutionInvitation{DraftID: "42", InstitutionIDs: []string{"", "  "}},
			wantErr: true,
		},
		{
			name:    "missing draft",
			in:      InstitutionInvitation{InstitutionIDs: []string{"A"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				var validation errs.Validation
				assert.True(t, errors.As(err, &validation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, tt.in.InstitutionIDs)
		})
	}
}

func TestPersonalInvitationValidate(t *testing.T) {
	in := PersonalInvitation{DraftID: "42", Emails: []string{"Abebe@MoF.gov.et", "abebe@mof.gov.et", "Hana <hana@moe.gov.et>"}}
	require.NoError(t, in.Validate())
	assert.Equal(t, []string{"abebe@mof.gov.et", "hana@moe.gov.et"}, in.Emails)

	bad := PersonalInvitation{DraftID: "42", Emails: []string{"not-an-email"}}
	assert.Error(t, bad.Validate())

	empty := PersonalInvitation{DraftID: "42"}
	assert.Error(t, empty.Validate())
}
