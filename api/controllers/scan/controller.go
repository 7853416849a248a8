package scan_controller

import (
	membermodel "github.com/kitfest-dev/event-pass-api/api/model/memberModel"
	scanmodel "github.com/kitfest-dev/event-pass-api/api/model/scanModel"
)

// ScanController handles attendance-scanning HTTP requests
type ScanController struct {
	memberRepo membermodel.IMemberRepository
	scanRepo   scanmodel.IScanLogRepository
}

// NewScanController creates a new scan controller with injected dependencies
func NewScanController(memberRepo membermodel.IMemberRepository, scanRepo scanmodel.IScanLogRepository) *ScanController {
	return &ScanController{
		memberRepo: memberRepo,
		scanRepo:   scanRepo,
	}
}
