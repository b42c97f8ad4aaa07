package combat

var conditionStart = map[Condition]string{
	Wet:       "%s becomes soaking wet!",
	Quicksand: "%s gets caught by quicksand!",
	Sleep:     "%s falls asleep!",
	Burn:      "%s is burned!",
}

var conditionState = map[Condition]string{
	Wet:       "soaking wet",
	Quicksand: "caught in quicksand",
	Sleep:     "asleep",
	Burn:      "burning",
}

var conditionEnd = map[Condition]string{
	Wet:       "%s dried up!",
	Quicksand: "%s escaped the quicksand!",
	Sleep:     "%s woke up!",
	Burn:      "%s's burning has faded!",
}

// endOfRound applies burn damage, gives the status condition its chance to
// wear off and counts protection down.
func (rc *roundContext) endOfRound(m *Competitor) {
	if m.Condition == Burn {
		dealt := m.takeDamage(percentOf(m.MaxHealth(), burnPercent))
		rc.say(EventDamage, nil, m, dealt, "%s is hurt by its burn and takes %d damage!", m.Name, dealt)
		if !m.Alive() {
			rc.say(EventFaint, nil, m, 0, "%s faints!", m.Name)
			return
		}
	}
	if m.Condition != NoCondition && rc.c.src.RollChance(conditionEndOdds, m.Name+"'s "+m.Condition.String()+" ends") {
		rc.say(EventCondition, m, nil, 0, conditionEnd[m.Condition], m.Name)
		m.Condition = NoCondition
	}
	if m.protectRounds > 0 {
		m.protectRounds--
		if m.protectRounds == 0 {
			m.protection = NoProtection
			rc.say(EventProtect, m, nil, 0, "%s is no longer protected.", m.Name)
		}
	}
}
