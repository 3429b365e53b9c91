package domain

import (
	"fmt"
	"sort"
)

// UpgradePolicy is the per-group rule a package class applies to tiered
// exclusivity groups (licor, decoración, foto)
type UpgradePolicy int

const (
	// UpgradeBlocked permits neither alternate while the other is present
	UpgradeBlocked UpgradePolicy = iota
	// UpgradeAllowed permits adding the higher tier while the lower tier is bundled
	UpgradeAllowed
	// StrictExclusive blocks either member whenever the other is present,
	// bundled or added, with no upgrade semantics
	StrictExclusive
)

// classRule is the declarative rule set for one package class
type classRule struct {
	upgrades map[ExclusivityGroup]UpgradePolicy
	// sidraBothAllowed lifts the sidra/champagne mutual exclusion so both
	// may be added independently
	sidraBothAllowed bool
	// hideBundledFoto hides a bundled foto service from the add-on listing
	// entirely instead of merely blocking it
	hideBundledFoto bool
}

// classRules is the rule table keyed by package class. Evaluated only through
// CanAdd; the rest of the system never branches on class names directly.
var classRules = map[PackageClass]classRule{
	ClassStandard: {
		upgrades: map[ExclusivityGroup]UpgradePolicy{
			GroupLicor:      UpgradeAllowed,
			GroupDecoracion: UpgradeAllowed,
			GroupFoto:       UpgradeAllowed,
		},
	},
	ClassPlatinum: {
		upgrades: map[ExclusivityGroup]UpgradePolicy{
			GroupLicor:      UpgradeAllowed,
			GroupDecoracion: UpgradeAllowed,
			GroupFoto:       UpgradeAllowed,
		},
	},
	ClassSpecial: {
		upgrades: map[ExclusivityGroup]UpgradePolicy{
			GroupLicor:      UpgradeAllowed,
			GroupDecoracion: UpgradeAllowed,
			GroupFoto:       UpgradeAllowed,
		},
		sidraBothAllowed: true,
	},
	ClassDiamond: {
		upgrades: map[ExclusivityGroup]UpgradePolicy{
			GroupLicor:      UpgradeAllowed,
			GroupDecoracion: UpgradeBlocked,
			GroupFoto:       UpgradeAllowed,
		},
		hideBundledFoto: true,
	},
	ClassDeluxe: {
		upgrades: map[ExclusivityGroup]UpgradePolicy{
			GroupLicor:      UpgradeBlocked,
			GroupDecoracion: UpgradeBlocked,
			GroupFoto:       UpgradeBlocked,
		},
		hideBundledFoto: true,
	},
	ClassCustom: {
		upgrades: map[ExclusivityGroup]UpgradePolicy{
			GroupLicor:      StrictExclusive,
			GroupDecoracion: StrictExclusive,
			GroupFoto:       StrictExclusive,
		},
	},
}

// strictDefaultRule applies when no package class is resolvable yet
var strictDefaultRule = classRule{
	upgrades: map[ExclusivityGroup]UpgradePolicy{
		GroupLicor:      StrictExclusive,
		GroupDecoracion: StrictExclusive,
		GroupFoto:       StrictExclusive,
	},
}

func ruleForClass(class PackageClass) classRule {
	if rule, ok := classRules[class]; ok {
		return rule
	}
	return strictDefaultRule
}

// Verdict is the outcome of a CanAdd check
type Verdict int

const (
	// VerdictAllowed means the service may be added as a normal add-on
	VerdictAllowed Verdict = iota
	// VerdictAllowedAsUpgrade means the service may be added, replacing the
	// bundled lower tier in effect
	VerdictAllowedAsUpgrade
	// VerdictBlocked means adding the service would violate the active rules
	VerdictBlocked
	// VerdictHidden means the service must not appear in the add-on listing
	// at all (bundled foto under Diamond/Deluxe)
	VerdictHidden
)

func (v Verdict) String() string {
	switch v {
	case VerdictAllowed:
		return "allowed"
	case VerdictAllowedAsUpgrade:
		return "allowed_as_upgrade"
	case VerdictBlocked:
		return "blocked"
	case VerdictHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Decision is the structured result of a CanAdd check. Rejections always
// carry a reason, and a conflicting service name when one exists.
type Decision struct {
	Verdict       Verdict
	Reason        string
	ConflictsWith string
	violation     error // sentinel the rejection maps to
}

// Allowed reports whether the service may be added
func (d Decision) Allowed() bool {
	return d.Verdict == VerdictAllowed || d.Verdict == VerdictAllowedAsUpgrade
}

// Err converts a rejection into a structured error; nil when allowed
func (d Decision) Err() error {
	if d.Allowed() {
		return nil
	}
	sentinel := d.violation
	if sentinel == nil {
		sentinel = ErrExclusivityViolation
	}
	if d.ConflictsWith != "" {
		return fmt.Errorf("%w: %s (conflicts with %q)", sentinel, d.Reason, d.ConflictsWith)
	}
	return fmt.Errorf("%w: %s", sentinel, d.Reason)
}

func blocked(reason, conflictsWith string) Decision {
	return Decision{Verdict: VerdictBlocked, Reason: reason, ConflictsWith: conflictsWith, violation: ErrExclusivityViolation}
}

func scheduleBlocked(reason string) Decision {
	return Decision{Verdict: VerdictBlocked, Reason: reason, violation: ErrScheduleViolation}
}

// bundledGroupMembers returns the package's bundled services belonging to the
// group, in included order
func bundledGroupMembers(pkg *Package, cat *Catalog, group ExclusivityGroup) ([]*Service, error) {
	if pkg == nil || group == GroupNone {
		return nil, nil
	}
	var members []*Service
	for _, id := range pkg.IncludedServiceIDs {
		svc, err := cat.ServiceByID(id)
		if err != nil {
			return nil, err
		}
		if svc.Group == group {
			members = append(members, svc)
		}
	}
	return members, nil
}

// ActiveBundledChoice exposes which alternate of a bundled group currently
// counts as "in the package": the explicit per-group user choice when set,
// otherwise the first bundled member found. Returns nil when the package
// bundles nothing from the group.
func ActiveBundledChoice(sel *Selection, cat *Catalog, group ExclusivityGroup) (*Service, error) {
	pkg, err := sel.chosenPackage(cat)
	if err != nil {
		return nil, err
	}
	members, err := bundledGroupMembers(pkg, cat, group)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	if choiceID, ok := sel.GroupChoices[group]; ok {
		for _, m := range members {
			if m.ID == choiceID {
				return m, nil
			}
		}
	}
	return members[0], nil
}

// DefaultGroupChoices computes the fallback per-group choice for a package:
// the first bundled member of each dual-alternative group
func DefaultGroupChoices(pkg *Package, cat *Catalog) (map[ExclusivityGroup]int64, error) {
	choices := make(map[ExclusivityGroup]int64)
	for group := range dualAlternativeGroups {
		members, err := bundledGroupMembers(pkg, cat, group)
		if err != nil {
			return nil, err
		}
		if len(members) > 0 {
			choices[group] = members[0].ID
		}
	}
	return choices, nil
}

// CanAdd decides whether the service may join the selection's add-on lines.
// The returned error is non-nil only for catalog inconsistencies; rule
// rejections are reported through the Decision.
func CanAdd(svc *Service, sel *Selection, cat *Catalog) (Decision, error) {
	// The extra-hour service is exempt from exclusivity and bounded by the
	// schedule instead
	if svc.Repeatable {
		return canAddExtraHour(svc, sel, cat)
	}

	if svc.Group == GroupNone {
		return Decision{Verdict: VerdictAllowed}, nil
	}

	pkg, err := sel.chosenPackage(cat)
	if err != nil {
		return Decision{}, err
	}
	class, err := sel.EffectiveClass(cat)
	if err != nil {
		return Decision{}, err
	}
	rule := ruleForClass(class)

	// A second line from the same group never coexists with the first
	if line := sel.addOnLine(svc.ID); line != nil {
		return blocked(fmt.Sprintf("%q is already added", svc.Name), ""), nil
	}
	for _, line := range sel.AddOns {
		other, err := cat.ServiceByID(line.ServiceID)
		if err != nil {
			return Decision{}, err
		}
		if other.Group != svc.Group {
			continue
		}
		if svc.Group == GroupSidra && rule.sidraBothAllowed {
			continue
		}
		return blocked(fmt.Sprintf("%q excludes %q", other.Name, svc.Name), other.Name), nil
	}

	if svc.Group.IsDualAlternative() {
		return canAddDualAlternate(svc, sel, cat, rule)
	}
	return canAddTiered(svc, sel, cat, pkg, rule)
}

// canAddDualAlternate handles photobooth and sidra/champagne: the bundled
// alternate is not re-addable, the other one stays offerable
func canAddDualAlternate(svc *Service, sel *Selection, cat *Catalog, rule classRule) (Decision, error) {
	active, err := ActiveBundledChoice(sel, cat, svc.Group)
	if err != nil {
		return Decision{}, err
	}

	if active != nil && active.ID == svc.ID {
		return blocked(fmt.Sprintf("%q is already included in the package", svc.Name), active.Name), nil
	}

	// Either nothing from the group is bundled, or svc is the designated
	// alternative of the bundled member. Sidra under the Special class is
	// additionally free of mutual exclusion between added lines, which the
	// caller already handled.
	return Decision{Verdict: VerdictAllowed}, nil
}

// canAddTiered handles licor, decoración and foto according to the class policy
func canAddTiered(svc *Service, sel *Selection, cat *Catalog, pkg *Package, rule classRule) (Decision, error) {
	members, err := bundledGroupMembers(pkg, cat, svc.Group)
	if err != nil {
		return Decision{}, err
	}

	if len(members) == 0 {
		return Decision{Verdict: VerdictAllowed}, nil
	}
	bundled := members[0]

	if bundled.ID == svc.ID {
		if svc.Group == GroupFoto && rule.hideBundledFoto {
			return Decision{
				Verdict:   VerdictHidden,
				Reason:    fmt.Sprintf("%q is included in the package", svc.Name),
				violation: ErrExclusivityViolation,
			}, nil
		}
		return blocked(fmt.Sprintf("%q is already included in the package", svc.Name), bundled.Name), nil
	}

	switch rule.upgrades[svc.Group] {
	case UpgradeAllowed:
		if svc.GroupTier > bundled.GroupTier {
			return Decision{Verdict: VerdictAllowedAsUpgrade}, nil
		}
		return blocked(fmt.Sprintf("downgrade from %q to %q is not permitted", bundled.Name, svc.Name), bundled.Name), nil
	case StrictExclusive:
		return blocked(fmt.Sprintf("%q and %q are mutually exclusive", bundled.Name, svc.Name), bundled.Name), nil
	default: // UpgradeBlocked
		return blocked(fmt.Sprintf("upgrades over %q are not permitted for this package", bundled.Name), bundled.Name), nil
	}
}

// canAddExtraHour bounds extra-hour increments by the hours the schedule
// actually requires beyond the package base duration. The 02:00 legal
// ceiling is enforced on the schedule itself.
func canAddExtraHour(svc *Service, sel *Selection, cat *Catalog) (Decision, error) {
	pkg, err := sel.chosenPackage(cat)
	if err != nil {
		return Decision{}, err
	}
	if pkg == nil {
		return scheduleBlocked("a package must be chosen before adding extra hours"), nil
	}
	if err := ValidateSchedule(sel.StartTime, sel.EndTime); err != nil {
		return scheduleBlocked(fmt.Sprintf("schedule must be valid first: %v", err)), nil
	}

	required, err := RequiredExtraHours(sel.StartTime, sel.EndTime, pkg.BaseDurationHours)
	if err != nil {
		return scheduleBlocked(err.Error()), nil
	}

	current := 0
	if line := sel.addOnLine(svc.ID); line != nil {
		current = line.Quantity
	}

	if current+1 > required {
		return scheduleBlocked(fmt.Sprintf(
			"schedule requires %d extra hour(s), %d already selected", required, current)), nil
	}
	return Decision{Verdict: VerdictAllowed}, nil
}

// ServiceStatus is one row of the derived add-on listing
type ServiceStatus struct {
	ServiceID     int64
	Name          string
	Verdict       Verdict
	Reason        string
	ConflictsWith string
}

// ServiceStatuses derives the full selectable/blocked/upgrade/hidden listing
// for every catalog service against the current selection. It is a pure
// derived view, recomputed on demand and never stored.
func ServiceStatuses(sel *Selection, cat *Catalog) ([]ServiceStatus, error) {
	ids := make([]int64, 0, len(cat.Services))
	for id := range cat.Services {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	statuses := make([]ServiceStatus, 0, len(ids))
	for _, id := range ids {
		svc := cat.Services[id]
		decision, err := CanAdd(svc, sel, cat)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, ServiceStatus{
			ServiceID:     svc.ID,
			Name:          svc.Name,
			Verdict:       decision.Verdict,
			Reason:        decision.Reason,
			ConflictsWith: decision.ConflictsWith,
		})
	}
	return statuses, nil
}

// ActiveAlternates exposes the currently bundled choice per dual-alternative
// group, so callers can compute which alternate is offerable
func ActiveAlternates(sel *Selection, cat *Catalog) (map[ExclusivityGroup]int64, error) {
	out := make(map[ExclusivityGroup]int64)
	for group := range dualAlternativeGroups {
		active, err := ActiveBundledChoice(sel, cat, group)
		if err != nil {
			return nil, err
		}
		if active != nil {
			out[group] = active.ID
		}
	}
	return out, nil
}
