package match

import "leagueofmolts.ai/internal/protocol"

// applyActions applies one agent's action batch. The batch is bounded; the
// excess is dropped with a warning. Actions from dead champions are silently
// ignored, as are actions naming targets that no longer exist: the world may
// have moved since the agent observed it, and that is not a protocol error.
func (m *Match) applyActions(env ActionEnvelope) {
	entry, ok := m.roster[env.AgentID]
	if !ok {
		return
	}
	u := m.unit(entry.UnitID)
	if u == nil {
		return
	}

	actions := env.Msg.Actions
	if max := m.cfg.MaxActionsPerTick; len(actions) > max {
		m.sendWarning(env.AgentID, protocol.ErrRateLimit, "action batch truncated")
		actions = actions[:max]
	}

	for _, a := range actions {
		switch a.ActionType {
		case protocol.ActionMove:
			if a.Target == nil {
				m.sendWarning(env.AgentID, protocol.ErrBadRequest, "move requires a target position")
				continue
			}
			pos := m.clampToArena(*a.Target)
			u.MoveTarget = &pos
			u.AttackTargetID = ""

		case protocol.ActionStop:
			u.MoveTarget = nil
			u.AttackTargetID = ""

		case protocol.ActionAttack:
			t := m.unit(a.TargetID)
			if t == nil {
				continue
			}
			if t.Team == u.Team || t == u {
				m.sendWarning(env.AgentID, protocol.ErrInvalidTarget, "cannot attack that unit")
				continue
			}
			if t.IsChampion() && t.Stealthed() {
				continue
			}
			u.AttackTargetID = t.ID
			u.MoveTarget = nil

		case protocol.ActionAbility:
			m.CastAbility(u, a.Ability, a.Target, m.unit(a.TargetID))

		case protocol.ActionBuy:
			if !m.BuyItem(u, a.ItemID) {
				m.sendWarning(env.AgentID, protocol.ErrNoResource, "cannot buy item")
			}

		case protocol.ActionSell:
			if !m.SellItem(u, a.ItemID) {
				m.sendWarning(env.AgentID, protocol.ErrNoResource, "cannot sell item")
			}

		default:
			m.sendWarning(env.AgentID, protocol.ErrBadRequest, "unknown action_type "+a.ActionType)
		}
	}
}
