/*
handlers.go - HTTP API handlers for the rewards engine

PURPOSE:
  Exposes the rewards computation engine via REST API. Handles HTTP
  request/response, JSON serialization, and orchestrates the engine's
  pure functions over the storage layer.

ENDPOINTS:
  Profile:
    GET  /api/profile                  Get the user profile
    POST /api/profile/onboarding       Complete onboarding
    PUT  /api/profile/goals            Replace health goals
    GET  /api/goals                    List selectable health goals

  Catalog:
    GET  /api/products                 List products (?category= filter)
    GET  /api/products/{id}            Get one product

  Stores:
    GET    /api/stores                 Directory joined with linked state
    POST   /api/stores/{id}/link       Link a loyalty account
    DELETE /api/stores/{id}/link       Unlink
    POST   /api/stores/{id}/primary    Mark as primary

  Points:
    GET /api/balance                   Points balance
    GET /api/tier                      Tier progress
    GET /api/streak                    Weekly streak
    GET /api/stats                     Achievement statistics bundle
    GET /api/transactions              Ledger, newest first

  Receipts:
    GET  /api/receipts                 History, newest first
    POST /api/receipts                 Submit a manual basket
    POST /api/receipts/scan            Simulated scan submission

  Challenges / Achievements:
    GET /api/challenges                Active challenges (refreshed)
    GET /api/achievements              Achievement list with unlock state

  Redemptions:
    GET  /api/redemptions              Redemption options
    POST /api/redemptions/redeem       Spend points

  Admin:
    POST /api/reset                    Wipe all state (dev only)

ARCHITECTURE:
  Handler holds all dependencies: the Store, the scored product catalog,
  and the merged challenge/achievement catalogs. Clock and NewID are
  injectable so tests run against a fixed timeline.

ATOMICITY:
  A mutex serializes every read-compute-write operation. The engine
  computes over snapshots; interleaving two submissions would double-
  apply streak updates and corrupt the balance invariant.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, insufficient balance
  - 403: Tier requirement not met
  - 404: Resource not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scanner.go: Simulated receipt scanning
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutribucks/rewards-engine/catalog"
	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store        engine.Store
	Catalog      *catalog.Catalog
	Challenges   []engine.Challenge
	Achievements []engine.Achievement

	// Injectable for deterministic tests.
	Clock func() time.Time
	NewID func() string
	Rng   *rand.Rand

	// Serializes read-compute-write operations.
	mu sync.Mutex
}

// NewHandler creates a new handler with the given store and catalogs.
func NewHandler(store engine.Store, cat *catalog.Catalog, challenges []engine.Challenge, achievements []engine.Achievement) *Handler {
	return &Handler{
		Store:        store,
		Catalog:      cat,
		Challenges:   challenges,
		Achievements: achievements,
		Clock:        time.Now,
		NewID:        uuid.NewString,
		Rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed initializes first-launch state: the achievement list (all locked)
// and the initial active challenges. Idempotent.
func (h *Handler) Seed(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	existing, err := h.Store.Achievements(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		if err := h.Store.SaveAchievements(ctx, h.Achievements); err != nil {
			return err
		}
	}

	_, _, err = h.refreshChallenges(ctx, h.Clock())
	return err
}

// =============================================================================
// PROFILE HANDLERS
// =============================================================================

// GetProfile returns the user profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Store.Profile(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// CompleteOnboarding creates the profile and finishes onboarding.
func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var req OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}

	goals, err := parseGoals(req.HealthGoals)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	now := h.Clock()

	profile, err := h.Store.Profile(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	if profile.ID == "" {
		profile.ID = h.NewID()
		profile.CreatedAt = now
	}
	profile.Name = req.Name
	profile.HealthGoals = goals
	profile.OnboardingComplete = true
	profile.LastActiveAt = now

	if err := h.Store.SaveProfile(ctx, profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}

	writeJSON(w, http.StatusCreated, toProfileDTO(profile))
}

// UpdateGoals replaces the profile's health goals.
func (h *Handler) UpdateGoals(w http.ResponseWriter, r *http.Request) {
	var req UpdateGoalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	goals, err := parseGoals(req.HealthGoals)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	profile, err := h.Store.Profile(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	profile.HealthGoals = goals
	profile.LastActiveAt = h.Clock()

	if err := h.Store.SaveProfile(ctx, profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// ListGoals returns the selectable health goals.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	defs := catalog.Goals()
	dtos := make([]GoalDTO, len(defs))
	for i, g := range defs {
		dtos[i] = GoalDTO{ID: string(g.ID), Name: g.Name, Description: g.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func parseGoals(raw []string) ([]engine.HealthGoal, error) {
	goals := make([]engine.HealthGoal, 0, len(raw))
	for _, g := range raw {
		goal := engine.HealthGoal(g)
		if !catalog.ValidGoal(goal) {
			return nil, fmt.Errorf("unknown health goal: %s", g)
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

// =============================================================================
// CATALOG HANDLERS
// =============================================================================

// ListProducts returns catalog products, optionally filtered by category.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var products []engine.Product
	if cat := r.URL.Query().Get("category"); cat != "" {
		products = h.Catalog.ByCategory(engine.ProductCategory(cat))
	} else {
		products = h.Catalog.All()
	}

	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = toProductDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetProduct returns a single product.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := engine.ProductID(chi.URLParam(r, "id"))
	p, ok := h.Catalog.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found", engine.ErrProductNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTO(p))
}

// =============================================================================
// STORE HANDLERS
// =============================================================================

// ListStores returns the store directory joined with linked state.
func (h *Handler) ListStores(w http.ResponseWriter, r *http.Request) {
	linked, err := h.Store.LinkedStores(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load linked stores", err)
		return
	}

	byID := make(map[engine.StoreID]engine.LinkedStore, len(linked))
	for _, ls := range linked {
		byID[ls.StoreID] = ls
	}

	defs := catalog.Stores()
	dtos := make([]StoreDTO, len(defs))
	for i, def := range defs {
		dto := StoreDTO{
			ID:             string(def.ID),
			Name:           def.Name,
			ProgramName:    def.Program.Name,
			CardPrefix:     def.Program.CardPrefix,
			MemberIDLength: def.Program.MemberIDLength,
		}
		if ls, ok := byID[def.ID]; ok {
			dto.Linked = true
			dto.MemberID = ls.MemberID
			dto.IsPrimary = ls.IsPrimary
		}
		dtos[i] = dto
	}
	writeJSON(w, http.StatusOK, dtos)
}

// LinkStore links a store loyalty account.
func (h *Handler) LinkStore(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))
	def, ok := catalog.StoreByID(storeID)
	if !ok {
		writeError(w, http.StatusNotFound, "Store not found", nil)
		return
	}

	var req LinkStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.MemberID) != def.Program.MemberIDLength {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("%s member ID must be %d characters", def.Program.Name, def.Program.MemberIDLength), nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	now := h.Clock()

	linked, err := h.Store.LinkedStores(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load linked stores", err)
		return
	}
	for _, ls := range linked {
		if ls.StoreID == storeID {
			writeError(w, http.StatusConflict, "Store already linked", engine.ErrStoreAlreadyLinked)
			return
		}
	}

	ls := engine.LinkedStore{
		StoreID:    storeID,
		MemberID:   req.MemberID,
		LinkedAt:   now,
		LastSyncAt: now,
		SyncStatus: "synced",
		IsPrimary:  len(linked) == 0,
	}
	linked = append(linked, ls)

	if err := h.Store.SaveLinkedStores(ctx, linked); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save linked stores", err)
		return
	}

	// Linking can unlock linkedStores achievements.
	if _, err := h.evaluateAchievements(ctx, now); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to evaluate achievements", err)
		return
	}

	writeJSON(w, http.StatusCreated, toLinkedStoreDTO(ls))
}

// UnlinkStore removes a linked store account.
func (h *Handler) UnlinkStore(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	linked, err := h.Store.LinkedStores(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load linked stores", err)
		return
	}

	var remaining []engine.LinkedStore
	removedPrimary := false
	found := false
	for _, ls := range linked {
		if ls.StoreID == storeID {
			found = true
			removedPrimary = ls.IsPrimary
			continue
		}
		remaining = append(remaining, ls)
	}
	if !found {
		writeError(w, http.StatusNotFound, "Store not linked", engine.ErrStoreNotLinked)
		return
	}
	if removedPrimary && len(remaining) > 0 {
		remaining[0].IsPrimary = true
	}

	if err := h.Store.SaveLinkedStores(ctx, remaining); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save linked stores", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "unlinked"})
}

// SetPrimaryStore marks one linked store as primary.
func (h *Handler) SetPrimaryStore(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	linked, err := h.Store.LinkedStores(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load linked stores", err)
		return
	}

	found := false
	for i := range linked {
		linked[i].IsPrimary = linked[i].StoreID == storeID
		if linked[i].IsPrimary {
			found = true
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "Store not linked", engine.ErrStoreNotLinked)
		return
	}

	if err := h.Store.SaveLinkedStores(ctx, linked); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save linked stores", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "primary set"})
}

// =============================================================================
// BALANCE, TIER, STREAK & LEDGER HANDLERS
// =============================================================================

// GetBalance returns the points balance.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Store.Balance(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load balance", err)
		return
	}
	writeJSON(w, http.StatusOK, toBalanceDTO(balance))
}

// GetTier returns tier progress derived from lifetime points.
func (h *Handler) GetTier(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Store.Balance(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load balance", err)
		return
	}
	writeJSON(w, http.StatusOK, toTierProgressDTO(engine.ProgressToNext(balance.Total)))
}

// GetStreak returns the weekly shopping streak.
func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.Store.Streak(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load streak", err)
		return
	}
	writeJSON(w, http.StatusOK, toStreakDTO(streak, h.Clock()))
}

// GetStats returns the achievement statistics bundle.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.assembleStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to assemble stats", err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsDTO(stats))
}

// GetTransactions returns the points ledger, newest first.
func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Store.Transactions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load transactions", err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionDTOs(txs))
}

// =============================================================================
// RECEIPT HANDLERS
// =============================================================================

// GetReceipts returns receipt history, newest first.
func (h *Handler) GetReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.Store.Receipts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load receipts", err)
		return
	}
	dtos := make([]ReceiptDTO, len(receipts))
	for i, rc := range receipts {
		dtos[i] = toReceiptDTO(rc)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SubmitReceipt accepts a manual basket submission.
func (h *Handler) SubmitReceipt(w http.ResponseWriter, r *http.Request) {
	var req SubmitReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	basket := make([]engine.BasketItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			writeError(w, http.StatusBadRequest, "Item quantity must be positive", nil)
			return
		}
		basket = append(basket, engine.BasketItem{
			ProductID: engine.ProductID(item.ProductID),
			Quantity:  item.Quantity,
		})
	}

	h.submitBasket(w, r, engine.StoreID(req.StoreID), basket, engine.MethodManual)
}

// ScanReceipt simulates scanning a receipt: a random basket of catalog
// products is submitted on the user's behalf.
func (h *Handler) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	basket := randomBasket(h.Catalog.All(), h.Rng)
	h.submitBasket(w, r, engine.StoreID(req.StoreID), basket, engine.MethodScan)
}

// submitBasket is the shared submission path: compute points, finalize
// the receipt, advance the streak, credit the balance, then re-evaluate
// challenges and achievements.
func (h *Handler) submitBasket(w http.ResponseWriter, r *http.Request, storeID engine.StoreID, basket []engine.BasketItem, method engine.SubmissionMethod) {
	def, ok := catalog.StoreByID(storeID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown store", nil)
		return
	}
	if len(basket) == 0 {
		writeError(w, http.StatusBadRequest, "Basket is empty", nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	now := h.Clock()
	products := h.Catalog.Products()

	profile, err := h.Store.Profile(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}
	balance, err := h.Store.Balance(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load balance", err)
		return
	}
	streak, err := h.Store.Streak(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load streak", err)
		return
	}

	// Points are computed against the pre-submission streak bonus; this
	// receipt's own streak advance benefits the next one.
	calc := engine.PointsForReceipt(basket, products, engine.ReceiptContext{
		Goals:       profile.HealthGoals,
		Tier:        engine.TierFor(balance.Total),
		StreakBonus: engine.StreakBonus(streak),
	})
	if len(calc.ItemPoints) == 0 {
		writeError(w, http.StatusBadRequest, "No recognized products in basket", nil)
		return
	}

	receipt := h.buildReceipt(storeID, basket, products, calc, now, method)

	streak = engine.UpdateStreak(streak, now)
	balance = engine.AddPoints(balance, calc.Total)

	if err := h.Store.AppendReceipt(ctx, receipt); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save receipt", err)
		return
	}
	earnTx := engine.PointsTransaction{
		ID:          engine.TransactionID(h.NewID()),
		Type:        engine.TxEarnPurchase,
		Amount:      calc.Total,
		Description: fmt.Sprintf("Receipt at %s", def.Name),
		StoreID:     storeID,
		ReceiptID:   receipt.ID,
		CreatedAt:   now,
	}
	if err := h.Store.AppendTransaction(ctx, earnTx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save transaction", err)
		return
	}
	if err := h.Store.SaveStreak(ctx, streak); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save streak", err)
		return
	}
	if err := h.Store.SaveBalance(ctx, balance); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save balance", err)
		return
	}

	profile.LastActiveAt = now
	if err := h.Store.SaveProfile(ctx, profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}

	// Challenge progress now includes the new receipt.
	_, completed, err := h.refreshChallenges(ctx, now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to refresh challenges", err)
		return
	}

	// Achievement conditions see the post-award statistics.
	unlocked, err := h.evaluateAchievements(ctx, now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to evaluate achievements", err)
		return
	}

	// Challenge and achievement awards may have moved the balance again.
	balance, err = h.Store.Balance(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load balance", err)
		return
	}

	resp := SubmitReceiptResponse{
		Receipt:              toReceiptDTO(receipt),
		PointsEarned:         calc.Total,
		Balance:              toBalanceDTO(balance),
		Tier:                 toTierProgressDTO(engine.ProgressToNext(balance.Total)),
		Streak:               toStreakDTO(streak, now),
		CompletedChallenges:  make([]ActiveChallengeDTO, 0, len(completed)),
		UnlockedAchievements: make([]AchievementDTO, 0, len(unlocked)),
	}
	for _, ac := range completed {
		resp.CompletedChallenges = append(resp.CompletedChallenges, toActiveChallengeDTO(ac))
	}
	for _, a := range unlocked {
		resp.UnlockedAchievements = append(resp.UnlockedAchievements, toAchievementDTO(a))
	}
	writeJSON(w, http.StatusCreated, resp)
}

// buildReceipt prices and finalizes the basket into an immutable receipt.
// Unknown product ids are dropped, mirroring the points calculation.
func (h *Handler) buildReceipt(storeID engine.StoreID, basket []engine.BasketItem, products map[engine.ProductID]engine.Product, calc engine.ReceiptPoints, now time.Time, method engine.SubmissionMethod) engine.Receipt {
	var items []engine.ReceiptItem
	subtotal := decimal.Zero
	line := 0

	for _, bi := range basket {
		p, ok := products[bi.ProductID]
		if !ok {
			continue
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(bi.Quantity)))
		items = append(items, engine.ReceiptItem{
			ProductID:    bi.ProductID,
			ProductName:  p.Name,
			Quantity:     bi.Quantity,
			PriceEach:    p.Price,
			LineTotal:    lineTotal,
			PointsEarned: calc.ItemPoints[line].Points,
		})
		subtotal = subtotal.Add(lineTotal)
		line++
	}

	return engine.Receipt{
		ID:          engine.ReceiptID(h.NewID()),
		StoreID:     storeID,
		Items:       items,
		Subtotal:    subtotal,
		TotalPoints: calc.Total,
		BonusPoints: calc.BonusPoints,
		ScannedAt:   now,
		Method:      method,
	}
}

// =============================================================================
// CHALLENGE HANDLERS
// =============================================================================

// GetChallenges refreshes and returns the active challenges.
func (h *Handler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	active, _, err := h.refreshChallenges(r.Context(), h.Clock())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to refresh challenges", err)
		return
	}

	dtos := make([]ActiveChallengeDTO, len(active))
	for i, ac := range active {
		dtos[i] = toActiveChallengeDTO(ac)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// refreshChallenges drops expired instances, generates replacements for
// any missing frequency tier, recomputes progress from the receipt
// history, and awards reward points for every instance that completed in
// this pass. Caller must hold h.mu. Returns the saved active set and the
// newly completed instances.
func (h *Handler) refreshChallenges(ctx context.Context, now time.Time) ([]engine.ActiveChallenge, []engine.ActiveChallenge, error) {
	active, err := h.Store.ActiveChallenges(ctx)
	if err != nil {
		return nil, nil, err
	}
	active = engine.RemoveExpiredChallenges(active, now)

	have := make(map[engine.ChallengeFrequency]bool, 3)
	for _, ac := range active {
		have[ac.Challenge.Frequency] = true
	}
	for _, ac := range engine.GenerateActiveChallenges(h.Challenges, now, h.NewID) {
		if !have[ac.Challenge.Frequency] {
			active = append(active, ac)
		}
	}

	receipts, err := h.Store.Receipts(ctx)
	if err != nil {
		return nil, nil, err
	}
	products := h.Catalog.Products()

	var completed []engine.ActiveChallenge
	for i, ac := range active {
		wasCompleted := ac.Completed
		next := engine.EvaluateChallengeProgress(ac, receipts, products)
		active[i] = next
		if next.Completed && !wasCompleted {
			completed = append(completed, next)
		}
	}

	for _, ac := range completed {
		if ac.PointsAwarded <= 0 {
			continue
		}
		balance, err := h.Store.Balance(ctx)
		if err != nil {
			return nil, nil, err
		}
		balance = engine.AddPoints(balance, ac.PointsAwarded)
		if err := h.Store.SaveBalance(ctx, balance); err != nil {
			return nil, nil, err
		}
		tx := engine.PointsTransaction{
			ID:          engine.TransactionID(h.NewID()),
			Type:        engine.TxEarnChallenge,
			Amount:      ac.PointsAwarded,
			Description: fmt.Sprintf("Challenge completed: %s", ac.Challenge.Title),
			CreatedAt:   now,
		}
		if err := h.Store.AppendTransaction(ctx, tx); err != nil {
			return nil, nil, err
		}
	}

	if err := h.Store.SaveActiveChallenges(ctx, active); err != nil {
		return nil, nil, err
	}
	return active, completed, nil
}

// =============================================================================
// ACHIEVEMENT HANDLERS
// =============================================================================

// GetAchievements returns the achievement list with unlock state.
func (h *Handler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.Store.Achievements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load achievements", err)
		return
	}
	dtos := make([]AchievementDTO, len(achievements))
	for i, a := range achievements {
		dtos[i] = toAchievementDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// achievementAward maps rarity to the unlock point award.
func achievementAward(rarity string) int {
	switch rarity {
	case "uncommon":
		return 50
	case "rare":
		return 100
	case "epic":
		return 250
	default:
		return 25
	}
}

// evaluateAchievements assembles statistics, runs the achievement
// engine, and awards unlock points. Caller must hold h.mu.
func (h *Handler) evaluateAchievements(ctx context.Context, now time.Time) ([]engine.Achievement, error) {
	stats, err := h.assembleStats(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := h.Store.Achievements(ctx)
	if err != nil {
		return nil, err
	}

	updated, unlocked := engine.CheckAchievements(achievements, stats, now)
	if err := h.Store.SaveAchievements(ctx, updated); err != nil {
		return nil, err
	}

	for _, a := range unlocked {
		award := achievementAward(a.Rarity)
		balance, err := h.Store.Balance(ctx)
		if err != nil {
			return nil, err
		}
		balance = engine.AddPoints(balance, award)
		if err := h.Store.SaveBalance(ctx, balance); err != nil {
			return nil, err
		}
		tx := engine.PointsTransaction{
			ID:          engine.TransactionID(h.NewID()),
			Type:        engine.TxEarnAchievement,
			Amount:      award,
			Description: fmt.Sprintf("Achievement unlocked: %s", a.Name),
			CreatedAt:   now,
		}
		if err := h.Store.AppendTransaction(ctx, tx); err != nil {
			return nil, err
		}
	}

	return unlocked, nil
}

// assembleStats joins receipts with the catalog into the statistics
// bundle the achievement engine evaluates conditions against.
func (h *Handler) assembleStats(ctx context.Context) (engine.Stats, error) {
	balance, err := h.Store.Balance(ctx)
	if err != nil {
		return engine.Stats{}, err
	}
	streak, err := h.Store.Streak(ctx)
	if err != nil {
		return engine.Stats{}, err
	}
	receipts, err := h.Store.Receipts(ctx)
	if err != nil {
		return engine.Stats{}, err
	}
	linked, err := h.Store.LinkedStores(ctx)
	if err != nil {
		return engine.Stats{}, err
	}

	products := h.Catalog.Products()
	totalItems := 0
	healthy := 0
	for _, r := range receipts {
		for _, item := range r.Items {
			totalItems += item.Quantity
			if p, ok := products[item.ProductID]; ok && p.Score != nil && p.Score.Grade == engine.GradeA {
				healthy += item.Quantity
			}
		}
	}

	// Category variety is judged on the most recent receipt only.
	uniqueCategories := 0
	if len(receipts) > 0 {
		cats := make(map[engine.ProductCategory]struct{})
		for _, item := range receipts[0].Items {
			if p, ok := products[item.ProductID]; ok {
				cats[p.Category] = struct{}{}
			}
		}
		uniqueCategories = len(cats)
	}

	return engine.Stats{
		TotalReceipts:    len(receipts),
		TotalItems:       totalItems,
		TotalPoints:      balance.Total,
		CurrentStreak:    streak.CurrentStreak,
		LinkedStores:     len(linked),
		UniqueCategories: uniqueCategories,
		HealthyItemCount: healthy,
		LifetimePoints:   balance.Total,
		Tier:             engine.TierFor(balance.Total),
	}, nil
}

// =============================================================================
// REDEMPTION HANDLERS
// =============================================================================

// ListRedemptions returns the redemption options annotated with
// affordability and tier eligibility.
func (h *Handler) ListRedemptions(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Store.Balance(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load balance", err)
		return
	}
	tier := engine.TierFor(balance.Total)

	opts := catalog.Redemptions()
	dtos := make([]RedemptionOptionDTO, len(opts))
	for i, opt := range opts {
		dtos[i] = toRedemptionOptionDTO(opt, balance, tier)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Redeem spends points on a redemption option.
func (h *Handler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	opt, ok := catalog.RedemptionByID(req.OptionID)
	if !ok {
		writeError(w, http.StatusNotFound, "Redemption option not found", nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	now := h.Clock()

	balance, err := h.Store.Balance(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load balance", err)
		return
	}

	if engine.TierRank(engine.TierFor(balance.Total)) < engine.TierRank(opt.MinTier) {
		writeError(w, http.StatusForbidden,
			fmt.Sprintf("%s requires %s tier", opt.Name, opt.MinTier), engine.ErrTierTooLow)
		return
	}

	balance, err = engine.RedeemPoints(balance, opt.PointsCost)
	if err != nil {
		if errors.Is(err, engine.ErrInsufficientBalance) {
			writeError(w, http.StatusBadRequest, "Not enough points", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to redeem", err)
		return
	}

	if err := h.Store.SaveBalance(ctx, balance); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save balance", err)
		return
	}

	tx := engine.PointsTransaction{
		ID:          engine.TransactionID(h.NewID()),
		Type:        opt.Type.TransactionType(),
		Amount:      -opt.PointsCost,
		Description: fmt.Sprintf("Redeemed: %s", opt.Name),
		CreatedAt:   now,
	}
	if err := h.Store.AppendTransaction(ctx, tx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save transaction", err)
		return
	}

	writeJSON(w, http.StatusOK, RedeemResponse{
		Balance:     toBalanceDTO(balance),
		Transaction: toTransactionDTO(tx),
	})
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// ResetData wipes all state and re-seeds first-launch data.
func (h *Handler) ResetData(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()

	ctx := r.Context()
	if err := h.Store.Reset(ctx); err != nil {
		h.mu.Unlock()
		writeError(w, http.StatusInternalServerError, "Failed to reset", err)
		return
	}
	h.mu.Unlock()

	if err := h.Seed(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to re-seed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
