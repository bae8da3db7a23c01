package entity

// Stage kinds. One per workflow-stage collection; the readiness
// disciplines share the same machinery with validation side records.
const (
	KindKickOff                   = "kick_off"
	KindDesign                    = "design"
	KindFacilities                = "facilities"
	KindProcessQualif             = "process_qualif"
	KindQualificationConfirmation = "qualification_confirmation"
	KindPPTuning                  = "p_p_tuning"

	KindMaintenance               = "maintenance"
	KindPackaging                 = "packaging"
	KindSafety                    = "safety"
	KindTraining                  = "training"
	KindSupp                      = "supp"
	KindToolingStatus             = "tooling_status"
	KindProductProcess            = "product_process"
	KindProcessStatusIndustrials  = "process_status_industrials"
	KindRunAtRateProduction       = "run_at_rate_production"
	KindDocumentation             = "documentation"
	KindLogistics                 = "logistics"
)

// StageDefinition declares a stage kind: its side-record type and its
// ordered field list. The list drives both the stored check rows and the
// synchronization logic, so it exists exactly once.
type StageDefinition struct {
	Kind     string
	SideKind string
	Fields   []string
}

// StageDefinitions is the registry of every stage kind.
//
// The legacy design checklist carried modification_of_product_fmea twice;
// the duplicate collapses to a single field here.
var StageDefinitions = map[string]StageDefinition{
	KindKickOff: {Kind: KindKickOff, SideKind: SideKindTask, Fields: []string{
		"time_schedule_approved",
		"modifications_planning",
		"validation_of_the_concept",
		"capacity_planning",
		"customer_requirements_review",
	}},
	KindDesign: {Kind: KindDesign, SideKind: SideKindTask, Fields: []string{
		"product_design_review",
		"design_fmea",
		"modification_of_product_fmea",
		"design_verification_plan",
		"drawings_3d_model",
		"tolerance_study",
		"material_specifications",
		"prototype_build",
		"prototype_test_report",
		"design_validation_plan",
		"engineering_change_management",
		"final_design_release",
	}},
	KindFacilities: {Kind: KindFacilities, SideKind: SideKindTask, Fields: []string{
		"machine_procurement",
		"tooling_procurement",
		"plant_layout",
		"utilities_installation",
		"equipment_acceptance",
	}},
	KindProcessQualif: {Kind: KindProcessQualif, SideKind: SideKindTask, Fields: []string{
		"process_flow_diagram",
		"process_fmea",
		"control_plan",
		"work_instructions",
		"msa_studies",
		"initial_capability_studies",
		"packaging_specifications",
		"preliminary_process_capability",
		"ppap_documentation",
		"qualification_run",
	}},
	KindQualificationConfirmation: {Kind: KindQualificationConfirmation, SideKind: SideKindTask, Fields: []string{
		"dimensional_report",
		"material_test_report",
		"performance_test_report",
		"appearance_approval",
		"capability_confirmation",
		"gauge_rr_confirmation",
		"control_plan_audit",
		"operator_training_confirmed",
		"packaging_approval",
		"rate_confirmation",
		"customer_ppap_approval",
		"safe_launch_plan",
		"lessons_learned",
	}},
	KindPPTuning: {Kind: KindPPTuning, SideKind: SideKindTask, Fields: []string{
		"injection_parameters",
		"mould_temperature_profile",
		"cycle_time_optimization",
		"scrap_rate_tuning",
		"changeover_time",
		"startup_parameters",
		"process_window_definition",
		"cavity_balance",
		"cooling_optimization",
		"automation_tuning",
		"robot_program",
		"end_of_arm_tooling",
		"degating_adjustment",
		"insert_loading",
		"post_moulding_shrinkage",
		"secondary_operations",
		"parameter_sheet_release",
	}},

	KindMaintenance: {Kind: KindMaintenance, SideKind: SideKindValidation, Fields: []string{
		"preventive_maintenance_plan",
		"spare_parts_list",
		"maintenance_training",
	}},
	KindPackaging: {Kind: KindPackaging, SideKind: SideKindValidation, Fields: []string{
		"packaging_definition",
		"returnable_packaging",
		"packaging_trial",
		"labeling_approval",
	}},
	KindSafety: {Kind: KindSafety, SideKind: SideKindValidation, Fields: []string{
		"risk_assessment",
		"safety_instructions",
	}},
	KindTraining: {Kind: KindTraining, SideKind: SideKindValidation, Fields: []string{
		"operator_training",
		"quality_awareness",
		"process_training",
	}},
	KindSupp: {Kind: KindSupp, SideKind: SideKindValidation, Fields: []string{
		"supplier_selection",
		"supplier_ppap",
		"incoming_inspection_plan",
		"supplier_capacity_confirmation",
		"supplier_agreements",
	}},
	KindToolingStatus: {Kind: KindToolingStatus, SideKind: SideKindValidation, Fields: []string{
		"tool_design_approved",
		"tool_manufacturing",
		"tool_trial_t0",
		"tool_trial_t1",
		"tool_final_acceptance",
		"tool_maintenance_plan",
		"spare_cavities",
		"tool_transfer",
		"tool_payment_milestones",
	}},
	KindProductProcess: {Kind: KindProductProcess, SideKind: SideKindValidation, Fields: []string{
		"dimensional_validation",
		"functional_validation",
		"appearance_validation",
		"process_capability",
		"cycle_time_validated",
		"scrap_level_acceptable",
		"rework_level_acceptable",
		"boundary_samples",
		"control_plan_applied",
	}},
	KindProcessStatusIndustrials: {Kind: KindProcessStatusIndustrials, SideKind: SideKindValidation, Fields: []string{
		"equipment_installed",
		"process_parameters_frozen",
		"staff_qualified",
		"capacity_demonstrated",
		"bottleneck_analysis",
		"oee_target_met",
		"preventive_maintenance_active",
		"quality_gates_active",
		"traceability_active",
		"handover_to_production",
	}},
	KindRunAtRateProduction: {Kind: KindRunAtRateProduction, SideKind: SideKindValidation, Fields: []string{
		"run_at_rate_scheduled",
		"staffing_confirmed",
		"material_supply_confirmed",
		"rate_achieved",
		"quality_level_achieved",
		"downtime_recorded",
		"corrective_actions_closed",
	}},
	KindDocumentation: {Kind: KindDocumentation, SideKind: SideKindValidation, Fields: []string{
		"control_plan_released",
		"work_instructions_released",
		"inspection_instructions",
		"packaging_instructions",
		"boundary_sample_register",
		"training_records",
	}},
	KindLogistics: {Kind: KindLogistics, SideKind: SideKindValidation, Fields: []string{
		"logistics_flow_defined",
		"warehouse_capacity",
		"transport_plan",
		"customs_requirements",
		"edi_connection",
	}},
}

// ReadinessKinds are the disciplines a readiness record aggregates, in
// display order.
var ReadinessKinds = []string{
	KindMaintenance,
	KindPackaging,
	KindSafety,
	KindTraining,
	KindSupp,
	KindToolingStatus,
	KindProductProcess,
	KindProcessStatusIndustrials,
	KindRunAtRateProduction,
	KindDocumentation,
	KindLogistics,
}

// StageKinds are the stages a mass production record references directly.
var StageKinds = []string{
	KindKickOff,
	KindDesign,
	KindFacilities,
	KindProcessQualif,
	KindQualificationConfirmation,
	KindPPTuning,
}

// DefinitionFor looks up a stage kind.
func DefinitionFor(kind string) (StageDefinition, bool) {
	def, ok := StageDefinitions[kind]
	return def, ok
}
