package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"hr-hierarchy/internal/pkg/config"
	"hr-hierarchy/internal/service"
)

const auditTimeout = time.Minute

// Scheduler 调度器
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	employeeSvc   service.EmployeeService
	cronSchedules map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(employeeSvc service.EmployeeService, logger *zap.Logger) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		employeeSvc:   employeeSvc,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.HierarchyConfig) error {
	log := s.logger.Sugar()

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.AuditCron
	if cronExpr == "" {
		log.Info("未配置hierarchy.audit_cron，不启动层级巡检")
		return nil
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		if err := s.TriggerAudit(); err != nil {
			log.Errorf("层级巡检任务执行失败: %v", err)
		}
	})
	if err != nil {
		log.Errorf("注册层级巡检任务: %v 失败: %v", cronExpr, err)
		return err
	}

	s.cronSchedules["hierarchy_audit"] = entryID
	log.Infof("层级巡检任务已注册: %s entry_id=%d", cronExpr, entryID)

	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	// 等待正在执行的任务完成
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// Entries 已注册的任务
func (s *Scheduler) Entries() map[string]cron.EntryID {
	return s.cronSchedules
}

// TriggerAudit 手动触发层级巡检
func (s *Scheduler) TriggerAudit() error {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	s.logger.Debug("执行定时任务: 层级巡检")
	return s.employeeSvc.Audit(ctx)
}
