package httpapi

import (
	"net/http"

	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/orchestrators/explore"
	"github.com/greenvalley/rpg-core/internal/orchestrators/inventory"
	"github.com/greenvalley/rpg-core/internal/services/game"
)

type createPlayerRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.CreatePlayer(r.Context(), &game.CreatePlayerInput{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

func (h *Handler) getPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	output, err := h.game.GetPlayer(r.Context(), &game.GetPlayerInput{PlayerID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) attack(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	output, err := h.game.Attack(r.Context(), &game.ActionInput{PlayerID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) heal(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	output, err := h.game.Heal(r.Context(), &game.ActionInput{PlayerID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) flee(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	output, err := h.game.Flee(r.Context(), &game.ActionInput{PlayerID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type exploreRequest struct {
	Action string `json:"action,omitempty"`
}

func (h *Handler) explore(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req exploreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.Explore(r.Context(), &game.ExploreInput{
		PlayerID: id,
		Action:   explore.Action(req.Action),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type eventChoiceRequest struct {
	ChoiceID string `json:"choiceId"`
}

func (h *Handler) resolveEventChoice(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req eventChoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.ResolveEventChoice(r.Context(), &game.ResolveEventChoiceInput{
		PlayerID: id,
		ChoiceID: req.ChoiceID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type gatherRequest struct {
	Type string `json:"type"`
}

func (h *Handler) gather(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req gatherRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.Gather(r.Context(), &game.GatherInput{
		PlayerID: id,
		Type:     req.Type,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type setZoneRequest struct {
	ZoneIndex int `json:"zoneIndex"`
}

func (h *Handler) setZone(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req setZoneRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.SetZone(r.Context(), &game.SetZoneInput{
		PlayerID:  id,
		ZoneIndex: req.ZoneIndex,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type gachaPullRequest struct {
	BannerID string `json:"bannerId"`
	Amount   int    `json:"amount"`
}

func (h *Handler) gachaPull(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req gachaPullRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.GachaPull(r.Context(), &game.GachaPullInput{
		PlayerID: id,
		BannerID: req.BannerID,
		Amount:   req.Amount,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type inventoryIndexRequest struct {
	Index int `json:"index"`
}

func (h *Handler) equip(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req inventoryIndexRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.Equip(r.Context(), &game.InventoryIndexInput{
		PlayerID: id,
		Index:    req.Index,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type unequipRequest struct {
	Slot string `json:"slot"`
}

func (h *Handler) unequip(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req unequipRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.Unequip(r.Context(), &game.UnequipInput{
		PlayerID: id,
		Slot:     entities.Slot(req.Slot),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) useItem(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req inventoryIndexRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.UseItem(r.Context(), &game.InventoryIndexInput{
		PlayerID: id,
		Index:    req.Index,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) stackInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	output, err := h.game.StackInventory(r.Context(), &game.ActionInput{PlayerID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) splitItem(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req inventoryIndexRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.SplitItem(r.Context(), &game.InventoryIndexInput{
		PlayerID: id,
		Index:    req.Index,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type repairItemRequest struct {
	Location string `json:"location"`
	Slot     string `json:"slot,omitempty"`
	Index    int    `json:"index,omitempty"`
}

func (h *Handler) repairItem(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req repairItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.RepairItem(r.Context(), &game.RepairItemInput{
		PlayerID: id,
		Location: inventory.RepairLocation(req.Location),
		Slot:     entities.Slot(req.Slot),
		Index:    req.Index,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type buyRequest struct {
	ItemID string `json:"itemId"`
}

func (h *Handler) buy(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req buyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.Buy(r.Context(), &game.BuyInput{
		PlayerID: id,
		ItemID:   req.ItemID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) sell(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req inventoryIndexRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.Sell(r.Context(), &game.InventoryIndexInput{
		PlayerID: id,
		Index:    req.Index,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type claimQuestRequest struct {
	QuestIndex int `json:"questIndex"`
}

func (h *Handler) claimQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req claimQuestRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.game.ClaimQuest(r.Context(), &game.ClaimQuestInput{
		PlayerID:   id,
		QuestIndex: req.QuestIndex,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
