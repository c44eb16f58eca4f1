// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// resolveView answers which management view the caller may enter
func (a *API) resolveView(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]
	state, err := model.ParseViewState(r.URL.Query().Get("mode"), r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	capability, err := state.RequiredCapability(resource)
	if err != nil {
		writeError(w, r, err)
		return
	}

	principal, _ := model.PrincipalFromContext(r.Context())
	writeData(w, r, http.StatusOK, viewResponse{
		Resource:   resource,
		State:      state,
		Capability: capability,
		Allowed:    principal.Can(capability),
	}, "")
}
