// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

func (a *API) listCommentRequests(w http.ResponseWriter, r *http.Request) {
	personal, err := parseOptionalBool("is_personal", r.URL.Query().Get("is_personal"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	requests, err := a.requestReader.ListCommentRequests(r.Context(), mux.Vars(r)["id"], personal)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, listEnvelope{Data: requests, Total: len(requests)}, "")
}

func (a *API) inviteInstitutions(w http.ResponseWriter, r *http.Request) {
	var payload institutionInvitationPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	requests, err := a.requestWriter.CreateInstitutionInvitation(r.Context(), mux.Vars(r)["id"], payload.Institutions, payload.Remark)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusCreated, requests, "Institutions invited.")
}

func (a *API) invitePeople(w http.ResponseWriter, r *http.Request) {
	var payload personalInvitationPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	requests, err := a.requestWriter.CreatePersonalInvitation(r.Context(), mux.Vars(r)["id"], payload.Emails, payload.Remark)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusCreated, requests, "People invited.")
}

func (a *API) getCommentRequest(w http.ResponseWriter, r *http.Request) {
	cr, err := a.requestReader.GetCommentRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, cr, "")
}

func (a *API) acceptCommentRequest(w http.ResponseWriter, r *http.Request) {
	var payload acceptancePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	cr, err := a.requestWriter.AcceptRequest(r.Context(), mux.Vars(r)["id"],
		payload.CommentOpeningDate, payload.CommentClosingDate, payload.Remark)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, cr, "Comment request accepted.")
}

func (a *API) rejectCommentRequest(w http.ResponseWriter, r *http.Request) {
	var payload messagePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	cr, err := a.requestWriter.RejectRequest(r.Context(), mux.Vars(r)["id"], payload.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, cr, "Comment request rejected.")
}

func (a *API) getAssignment(w http.ResponseWriter, r *http.Request) {
	assignment, err := a.assignments.GetAssignment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, assignment, "")
}

func (a *API) assignCommenters(w http.ResponseWriter, r *http.Request) {
	var payload assignmentPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := a.assignments.AssignCommenters(r.Context(), mux.Vars(r)["id"], payload.Commenters, payload.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusCreated, assignment, "Commenters assigned.")
}

func (a *API) listReflections(w http.ResponseWriter, r *http.Request) {
	reflections, err := a.reflections.ListReflections(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, listEnvelope{Data: reflections, Total: len(reflections)}, "")
}

func (a *API) submitReflection(w http.ResponseWriter, r *http.Request) {
	var payload reflectionPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	principal, ok := model.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, errors.NewUnauthorized("authentication required"))
		return
	}

	reflection, err := a.reflections.SubmitReflection(r.Context(), mux.Vars(r)["id"], principal.UserID, payload.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusCreated, reflection, "Reflection submitted.")
}
