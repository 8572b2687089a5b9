package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/domain"
)

// SubjectCPQAlert é o assunto fixo das notificações do monitoramento
const SubjectCPQAlert = "Alert: CPQ exceeds threshold on Meta Ads"

// Channel é um canal de entrega de notificações. Cada canal falha de forma
// isolada: um erro aqui nunca impede a tentativa dos demais.
type Channel interface {
	Send(ctx context.Context, subject, message string) error
	Type() string
}

// Notifier entrega o alerta final do monitoramento
type Notifier interface {
	// Notify monta a mensagem e tenta todos os canais. Nunca retorna erro:
	// falhas de entrega são registradas e a execução segue.
	Notify(ctx context.Context, alert domain.Alert, degraded bool)
}

type Dispatcher struct {
	threshold float64
	channels  []Channel
}

func NewDispatcher(cfg *config.Config, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		threshold: cfg.CpqMonitor.Threshold,
		channels:  channels,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, alert domain.Alert, degraded bool) {
	message := d.BuildMessage(alert, degraded)

	for _, channel := range d.channels {
		if err := channel.Send(ctx, SubjectCPQAlert, message); err != nil {
			logrus.WithFields(logrus.Fields{
				"channel": channel.Type(),
				"error":   err.Error(),
			}).Error("notifier: falha ao enviar a notificação")
			continue
		}

		logrus.WithField("channel", channel.Type()).Info("notifier: notificação enviada com sucesso")
	}
}

// BuildMessage monta o corpo da notificação. Listas vazias ainda produzem
// uma mensagem bem formada; quando o relatório de qualificação não ficou
// disponível a mensagem começa com um aviso explícito de dados incompletos.
func (d *Dispatcher) BuildMessage(alert domain.Alert, degraded bool) string {
	messageAd := fmt.Sprintf(
		"The following ads: \n%s\n have underperformed, with CPQ > %.2f.",
		strings.Join(alert.ExceedingAds, "\n"),
		d.threshold,
	)
	messageCampaign := fmt.Sprintf(
		"The following campaigns: \n%s\n have underperformed, with CPQ > %.2f.",
		strings.Join(alert.ExceedingCampaigns, "\n"),
		d.threshold,
	)

	message := fmt.Sprintf("%s\n\n%s", messageAd, messageCampaign)

	if degraded {
		message = "WARNING: qualification report unavailable this run; CPQ alerts may be incomplete.\n\n" + message
	}

	return message
}
