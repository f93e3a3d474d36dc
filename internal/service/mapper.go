package service

import (
	"gigflow-api/internal/entity"
)

func mapGig(g *entity.Gig) *entity.GigOutputModel {
	return &entity.GigOutputModel{
		Id:          g.Id.String(),
		Title:       g.Title,
		Description: g.Description,
		Budget:      g.Budget,
		OwnerId:     g.OwnerId.String(),
		Owner:       g.Owner,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func mapGigs(g []entity.Gig) []entity.GigOutputModel {
	s := make([]entity.GigOutputModel, 0, len(g))
	for i := range g {
		s = append(s, *mapGig(&g[i]))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:           b.Id.String(),
		GigId:        b.GigId.String(),
		FreelancerId: b.FreelancerId.String(),
		Freelancer:   b.Freelancer,
		Message:      b.Message,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func mapBids(b []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0, len(b))
	for i := range b {
		s = append(s, *mapBid(&b[i]))
	}

	return s
}

func mapUser(u *entity.User) *entity.UserProjection {
	return &entity.UserProjection{
		Id:    u.Id.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}
