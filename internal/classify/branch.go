// Package classify derives the fixed branch taxonomy and reservation
// categories from free-text program, course, and seat-type strings.
package classify

import "strings"

// Branch is one member of the fixed engineering-discipline taxonomy.
type Branch string

const (
	BranchComputerScience Branch = "Computer Science"
	BranchElectrical      Branch = "Electrical"
	BranchMechanical      Branch = "Mechanical"
	BranchElectronics     Branch = "Electronics"
	BranchCivil           Branch = "Civil"
	BranchInformationTech Branch = "Information Technology"
	BranchChemical        Branch = "Chemical"
	BranchAerospace       Branch = "Aerospace"
	BranchBiotechnology   Branch = "Biotechnology"
	BranchInstrumentation Branch = "Instrumentation"
	BranchMetallurgy      Branch = "Metallurgy"
	BranchMining          Branch = "Mining"
	BranchProduction      Branch = "Production"
	BranchPhysics         Branch = "Physics"
	BranchMathematics     Branch = "Mathematics"
	BranchOther           Branch = "Other"
)

// branchRule maps any of its substrings to a branch. Rules are evaluated in
// slice order, first match wins, so more specific rules must come first.
type branchRule struct {
	branch   Branch
	patterns []string
}

// programRules is the rule set tuned for admission-sheet program names
// ("Computer Science And Engineering (4 Year, Bachelor of Technology)").
var programRules = []branchRule{
	{BranchComputerScience, []string{"COMPUTER SCIENCE", "CS", "CSE", "COMPUTER ENGG", "COMPUTER"}},
	{BranchElectrical, []string{"ELECTRICAL", "EE", "ELECTRICAL ENGG", "ELECTRICAL ENGINEERING"}},
	{BranchMechanical, []string{"MECHANICAL", "ME", "MECH", "MECHANICAL ENGG"}},
	{BranchElectronics, []string{"ELECTRONICS", "EC", "ECE", "ELECTRONICS ENGG", "ELECTRONICS AND COMMUNICATION"}},
	{BranchCivil, []string{"CIVIL", "CE", "CIVIL ENGG", "CIVIL ENGINEERING"}},
	{BranchInformationTech, []string{"INFORMATION TECHNOLOGY", "IT", "IT ENGG"}},
	{BranchChemical, []string{"CHEMICAL", "CH", "CHEMICAL ENGG", "CHEMICAL ENGINEERING"}},
	{BranchAerospace, []string{"AEROSPACE", "AE", "AERONAUTICAL", "AEROSPACE ENGG"}},
	{BranchBiotechnology, []string{"BIOTECHNOLOGY", "BT", "BIO TECH", "BIO TECHNOLOGY"}},
	{BranchInstrumentation, []string{"INSTRUMENTATION", "IC", "INSTRUMENTATION ENGG", "CONTROL"}},
	{BranchMetallurgy, []string{"METALLURGY", "MT", "METALLURGICAL ENGG"}},
	{BranchMining, []string{"MINING", "MN", "MINING ENGG"}},
	{BranchProduction, []string{"PRODUCTION", "INDUSTRIAL", "PRODUCTION ENGG", "INDUSTRIAL ENGG"}},
	{BranchPhysics, []string{"PHYSICS", "ENGINEERING PHYSICS"}},
	{BranchMathematics, []string{"MATHEMATICS", "MATHS", "COMPUTATIONAL MATHEMATICS"}},
}

// courseRules is the independent rule set tuned for the rating sheet's
// shorter course labels. The two sheets follow genuinely different naming
// conventions, so the rule sets are kept separate on purpose.
var courseRules = []branchRule{
	{BranchComputerScience, []string{"COMPUTER"}},
	{BranchMechanical, []string{"MECHANICAL"}},
	{BranchCivil, []string{"CIVIL"}},
	{BranchElectronics, []string{"ELECTRONICS"}},
	{BranchElectrical, []string{"ELECTRICAL"}},
	{BranchChemical, []string{"CHEMICAL"}},
	{BranchInformationTech, []string{"INFORMATION TECHNOLOGY", "IT"}},
	{BranchBiotechnology, []string{"BIOTECH"}},
	{BranchInstrumentation, []string{"INSTRUMENTATION"}},
	{BranchMetallurgy, []string{"METALLURGY"}},
	{BranchMining, []string{"MINING"}},
	{BranchProduction, []string{"PRODUCTION", "INDUSTRIAL"}},
	{BranchPhysics, []string{"PHYSICS"}},
}

func matchRules(text string, rules []branchRule) Branch {
	upper := strings.ToUpper(text)
	for _, rule := range rules {
		for _, pattern := range rule.patterns {
			if strings.Contains(upper, pattern) {
				return rule.branch
			}
		}
	}
	return BranchOther
}

// Program classifies an admission-sheet program name into a branch.
func Program(programName string) Branch {
	return matchRules(programName, programRules)
}

// Course classifies a rating-sheet course label into a branch.
func Course(courseName string) Branch {
	return matchRules(courseName, courseRules)
}
