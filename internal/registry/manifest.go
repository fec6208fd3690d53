package registry

// Manifest is the single registration point for tabs. Adding a tab to
// the platform means adding its descriptor here; the orchestrator core
// never needs to change.
func Manifest() []Descriptor {
	return []Descriptor{
		// ---- work packages -------------------------------------------------
		{
			ID:      "wp3",
			Label:   "WP3 – Data management and analytics for cable systems",
			Kind:    KindWorkPackage,
			Order:   11,
			WPCode:  "WP3",
			Version: "M18 snapshot",
			Status:  "active",
		},
		{
			ID:      "wp4",
			Label:   "WP4 – Technologies for the development of innovative cable systems",
			Kind:    KindWorkPackage,
			Order:   12,
			WPCode:  "WP4",
			Version: "M18 snapshot",
			Status:  "active",
		},
		{
			ID:      "wp5",
			Label:   "WP5 – Lifecycle assessment and asset management",
			Kind:    KindWorkPackage,
			Order:   13,
			WPCode:  "WP5",
			Version: "M18 snapshot",
			Status:  "active",
		},
		{
			ID:      "wp6",
			Label:   "WP6 – Demonstration and validation",
			Kind:    KindWorkPackage,
			Order:   14,
			WPCode:  "WP6",
			Version: "M18 snapshot",
			Status:  "active",
		},

		// ---- categories ----------------------------------------------------
		{
			ID:       "cat-monitoring",
			Label:    "Monitoring & Analytics",
			Kind:     KindCategory,
			Order:    100,
			Category: "Monitoring & Analytics",
			Version:  "conceptual",
		},
		{
			ID:       "cat-performance",
			Label:    "Cable Performance & Optimization",
			Kind:     KindCategory,
			Order:    110,
			Category: "Cable Performance & Optimization",
			Version:  "conceptual",
		},
		{
			ID:       "cat-awareness",
			Label:    "Cable System Awareness",
			Kind:     KindCategory,
			Order:    120,
			Category: "Cable System Awareness",
			Version:  "conceptual",
		},
		{
			ID:       "cat-human",
			Label:    "Human Expertise",
			Kind:     KindCategory,
			Order:    130,
			Category: "Human Expertise",
			Version:  "conceptual",
		},

		// ---- services ------------------------------------------------------
		{
			ID:           "svc-wp3-overview",
			Label:        "WP3 Overview",
			Kind:         KindService,
			Order:        200,
			WorkPackages: []string{"WP3"},
			Tags:         []string{"overview", "data-management"},
			Version:      "v0.2 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-wp4-overview",
			Label:        "WP4 Overview",
			Kind:         KindService,
			Order:        201,
			WorkPackages: []string{"WP4"},
			Tags:         []string{"overview", "monitoring", "diagnostics"},
			Version:      "v0.2 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-wp5-overview",
			Label:        "WP5 Overview",
			Kind:         KindService,
			Order:        202,
			WorkPackages: []string{"WP5"},
			Tags:         []string{"overview", "lifecycle"},
			Version:      "v0.2 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-wp6-overview",
			Label:        "WP6 Overview",
			Kind:         KindService,
			Order:        203,
			WorkPackages: []string{"WP6"},
			Tags:         []string{"overview", "demonstration"},
			Version:      "v0.1 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-monitoring-analytics",
			Label:        "Monitoring & Analytics Workbench",
			Kind:         KindService,
			Order:        210,
			WorkPackages: []string{"WP4", "WP5"},
			Categories:   []string{"Monitoring & Analytics"},
			Tags:         []string{"monitoring", "kpi", "uptime", "telemetry"},
			Version:      "v1.2 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-hvdc-operational-monitoring",
			Label:        "HVDC Operational Monitoring",
			Kind:         KindService,
			Order:        211,
			WorkPackages: []string{"WP4"},
			Categories:   []string{"Monitoring & Analytics", "Cable Performance & Optimization"},
			Tags:         []string{"hvdc", "monitoring", "operational", "load", "temp"},
			Version:      "v0.3 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-hvdc-data-timeline",
			Label:        "HVDC Data Timeline",
			Kind:         KindService,
			Order:        212,
			WorkPackages: []string{"WP3", "WP4"},
			Categories:   []string{"Monitoring & Analytics"},
			Tags:         []string{"hvdc", "timeline", "history"},
			Version:      "v0.8 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-hvdc-asset-degradation",
			Label:        "HVDC Asset Degradation & Remaining Life Estimation",
			Kind:         KindService,
			Order:        220,
			WorkPackages: []string{"WP4", "WP5", "WP6"},
			Categories: []string{
				"Cable Performance & Optimization",
				"Cable System Awareness",
				"Monitoring & Analytics",
			},
			Tags:    []string{"hvdc", "degradation", "remaining-life", "ageing"},
			Version: "v0.1 (demo)",
			Status:  "active",
		},
		{
			ID:           "svc-hvdc-data-utilization-validation",
			Label:        "HVDC Data Utilization & Validation",
			Kind:         KindService,
			Order:        221,
			WorkPackages: []string{"WP3", "WP5"},
			Categories:   []string{"Monitoring & Analytics", "Cable System Awareness"},
			Tags:         []string{"hvdc", "validation", "utilization", "data-quality"},
			Version:      "v0.2 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-hvdc-scenario-explorer",
			Label:        "HVDC Scenario Explorer",
			Kind:         KindService,
			Order:        222,
			WorkPackages: []string{"WP5", "WP6"},
			Categories:   []string{"Cable Performance & Optimization"},
			Tags:         []string{"hvdc", "scenario", "what-if"},
			Version:      "v0.1 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-ai-ml-ageing-condition",
			Label:        "AI/ML Ageing & Condition Assessment",
			Kind:         KindService,
			Order:        230,
			WorkPackages: []string{"WP4", "WP5"},
			Categories:   []string{"Cable System Awareness", "Monitoring & Analytics"},
			Tags:         []string{"ai", "ml", "ageing", "condition", "anomaly"},
			Version:      "v0.1 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-pre-fault-early-warning",
			Label:        "Pre-Fault Early-Warning & Diagnostic Readiness",
			Kind:         KindService,
			Order:        231,
			WorkPackages: []string{"WP4"},
			Categories:   []string{"Monitoring & Analytics", "Cable System Awareness"},
			Tags:         []string{"pre-fault", "early-warning", "diagnostics", "anomaly"},
			Version:      "v0.1 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-cable-structure-context",
			Label:        "Cable Structure & Context",
			Kind:         KindService,
			Order:        232,
			WorkPackages: []string{"WP3", "WP4"},
			Categories:   []string{"Cable System Awareness"},
			Tags:         []string{"structure", "context", "asset-model"},
			Version:      "v0.1 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-diagnostics",
			Label:        "Diagnostics Console",
			Kind:         KindService,
			Order:        233,
			WorkPackages: []string{"WP4"},
			Categories:   []string{"Monitoring & Analytics"},
			Tags:         []string{"diagnostics", "kpi", "microservices"},
			Version:      "v0.4 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-service-topology",
			Label:        "Service Topology",
			Kind:         KindService,
			Order:        240,
			WorkPackages: []string{"WP2", "WP3"},
			Categories:   []string{"Cable System Awareness"},
			Tags:         []string{"topology", "registry", "architecture"},
			Version:      "v0.6 (demo)",
			Status:       "active",
		},
		{
			ID:           "svc-timeline",
			Label:        "Interactive Timeline",
			Kind:         KindService,
			Order:        241,
			WorkPackages: []string{"WP3"},
			Categories:   []string{"Monitoring & Analytics"},
			Tags:         []string{"timeline", "visualization"},
			Version:      "v0.8 (demo)",
			Status:       "active",
		},
		{
			ID:         "svc-cat-ma-overview",
			Label:      "Monitoring & Analytics Overview",
			Kind:       KindService,
			Order:      250,
			Categories: []string{"Monitoring & Analytics"},
			Tags:       []string{"overview", "monitoring", "analytics"},
			Version:    "v0.1 (demo)",
			Status:     "active",
		},
		{
			ID:         "svc-cat-cpo-overview",
			Label:      "Cable Performance & Optimization Overview",
			Kind:       KindService,
			Order:      251,
			Categories: []string{"Cable Performance & Optimization"},
			Tags:       []string{"overview", "performance", "optimization"},
			Version:    "v0.1 (demo)",
			Status:     "active",
		},
		{
			ID:         "svc-cat-csa-overview",
			Label:      "Cable System Awareness Overview",
			Kind:       KindService,
			Order:      252,
			Categories: []string{"Cable System Awareness"},
			Tags:       []string{"overview", "awareness"},
			Version:    "v0.1 (demo)",
			Status:     "active",
		},
		{
			ID:         "svc-cat-he-overview",
			Label:      "Human Expertise Overview",
			Kind:       KindService,
			Order:      253,
			Categories: []string{"Human Expertise"},
			Tags:       []string{"overview", "human", "expertise"},
			Version:    "v0.1 (demo)",
			Status:     "active",
		},
	}
}
