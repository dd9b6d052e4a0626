package constants

// RecoveryStage is a coarse bucket describing elapsed time since a site's
// last use.
type RecoveryStage string

// BodyRegion represents the broad body area a site belongs to
type BodyRegion string

// Side represents the lateral position of a site
type Side string

// GoalKind represents the kind of tracking goal
type GoalKind string

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "omnisite"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/omnisite/omnisite.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "omnisite-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "omnisite-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.omnisite.tray"

	// Recovery stages, ordered from most recently used to fully rested
	StageActive    RecoveryStage = "active"
	StageHealing   RecoveryStage = "healing"
	StageRecovered RecoveryStage = "recovered"
	StageReady     RecoveryStage = "ready"

	// NeverUsedSentinelDays is reported as the elapsed-day count for sites
	// with no recorded placements.
	NeverUsedSentinelDays = 9999

	// Body regions
	RegionAbdomen BodyRegion = "abdomen"
	RegionArm     BodyRegion = "arm"
	RegionLeg     BodyRegion = "leg"
	RegionButtock BodyRegion = "buttock"
	RegionBack    BodyRegion = "back"

	// Sides
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideCenter Side = "center"

	// Goal kinds
	GoalStreakDays       GoalKind = "streak_days"
	GoalWeeklyPlacements GoalKind = "weekly_placements"
	GoalSiteCoverage     GoalKind = "site_coverage"

	// Default settings
	DefaultRestPeriodDays    = 7
	DefaultActiveWindowDays  = 2
	DefaultHealingWindowDays = 5
	DefaultLogDays           = 14
	DefaultCleanupAfterDays  = 90

	// Severity/score bounds shared by ratings and symptom entries
	MinScore = 1
	MaxScore = 5
)

// Session States. The tab views come first so tab cycling can index them.
const (
	StateSites SessionState = iota
	StateToday
	StateHistory
	StateStats
	StateLogForm
	StateConfirmDelete
)
