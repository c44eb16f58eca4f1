// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

func (a *API) listDrafts(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r.URL.Query().Get("page"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	principal, _ := model.PrincipalFromContext(r.Context())
	result, err := a.draftReader.ListDrafts(r.Context(), principal, model.DraftFilter{
		Page:       page,
		ShortTitle: r.URL.Query().Get("short_title"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, listEnvelope{
		Data:        result.Drafts,
		Total:       result.Total,
		CurrentPage: result.CurrentPage,
	}, "")
}

func (a *API) getDraft(w http.ResponseWriter, r *http.Request) {
	principal, _ := model.PrincipalFromContext(r.Context())
	draft, err := a.draftReader.GetDraft(r.Context(), principal, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, draft, "")
}

func (a *API) updateDraft(w http.ResponseWriter, r *http.Request) {
	var payload draftPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	principal, _ := model.PrincipalFromContext(r.Context())
	draft, err := a.draftWriter.UpdateDraft(r.Context(), principal, payload.toModel(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, draft, "Draft updated.")
}

func (a *API) rejectCommentOpening(w http.ResponseWriter, r *http.Request) {
	var payload messagePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	if err := a.draftWriter.RejectCommentOpening(r.Context(), mux.Vars(r)["id"], payload.Message); err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, nil, "Comment opening request rejected.")
}
